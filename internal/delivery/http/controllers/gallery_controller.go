package controllers

import (
	"log/slog"
	"net/http"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// MemberSuccessResponse is the success response envelope for a single gallery member.
type MemberSuccessResponse struct {
	Data  *domain.GalleryMember `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ListMembersSuccessResponse is the success response envelope for GET /members (200).
type ListMembersSuccessResponse struct {
	Data  []*domain.GalleryMember `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type GalleryController struct {
	Logger         *slog.Logger
	Service        domain.GalleryService
	MaxUploadBytes int64
}

func NewGalleryController(logger *slog.Logger, svc domain.GalleryService, maxUploadBytes int64) *GalleryController {
	return &GalleryController{Logger: logger, Service: svc, MaxUploadBytes: maxUploadBytes}
}

// CreateMember godoc
// @Summary Add a gallery member
// @Description Gallery members are also the mailing list for event announcements.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param mname formData string true "Name"
// @Param position formData string false "Position"
// @Param email formData string false "Email"
// @Param description formData string false "Description"
// @Param image formData file false "JPG or PNG image"
// @Success 201 {object} controllers.MemberSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upload_failed"
// @Router /gallery [post]
func (c *GalleryController) CreateMember(w http.ResponseWriter, r *http.Request) {
	in, ok := readProfileForm(w, r, c.MaxUploadBytes)
	if !ok {
		return
	}
	defer helpers.CloseUpload(in.Image)

	m, err := c.Service.CreateMember(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "member not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, m)
}

// ListMembers godoc
// @Summary List gallery members
// @Tags gallery
// @Produce json
// @Success 200 {object} controllers.ListMembersSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /members [get]
func (c *GalleryController) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := c.Service.ListMembers(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}

// UpdateMember godoc
// @Summary Update a gallery member's text fields
// @Description The stored image is kept.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID (UUID)"
// @Param body body ProfileRequest true "Member fields"
// @Success 200 {object} controllers.MemberSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /members/{id} [put]
func (c *GalleryController) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	m, err := c.Service.UpdateMember(r.Context(), r.PathValue("id"), req.toInput(nil))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "member not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, m)
}

// DeleteMember godoc
// @Summary Delete a gallery member
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data.deleted is true"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /members/{id} [delete]
func (c *GalleryController) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteMember(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, c.Logger, err, "member not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
