package controllers

import (
	"log/slog"
	"net/http"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// TeacherSuccessResponse is the success response envelope for a single teacher.
type TeacherSuccessResponse struct {
	Data  *domain.Teacher   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListTeachersSuccessResponse is the success response envelope for GET /teacher (200).
type ListTeachersSuccessResponse struct {
	Data  []*domain.Teacher `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TeacherController struct {
	Logger         *slog.Logger
	Service        domain.TeacherService
	MaxUploadBytes int64
}

func NewTeacherController(logger *slog.Logger, svc domain.TeacherService, maxUploadBytes int64) *TeacherController {
	return &TeacherController{Logger: logger, Service: svc, MaxUploadBytes: maxUploadBytes}
}

// CreateTeacher godoc
// @Summary Add a teacher
// @Description Without an image the configured placeholder avatar is stored.
// @Tags teachers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param mname formData string true "Name"
// @Param position formData string false "Position"
// @Param email formData string false "Email"
// @Param place formData string false "Place"
// @Param description formData string false "Description"
// @Param image formData file false "JPG or PNG image"
// @Success 201 {object} controllers.TeacherSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upload_failed"
// @Router /teacher [post]
func (c *TeacherController) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	in, ok := readProfileForm(w, r, c.MaxUploadBytes)
	if !ok {
		return
	}
	defer helpers.CloseUpload(in.Image)

	t, err := c.Service.CreateTeacher(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "teacher not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, t)
}

// ListTeachers godoc
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} controllers.ListTeachersSuccessResponse
// @Router /teacher [get]
func (c *TeacherController) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := c.Service.ListTeachers(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, teachers)
}

// UpdateTeacher godoc
// @Summary Update a teacher's text fields
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID (UUID)"
// @Param body body ProfileRequest true "Teacher fields"
// @Success 200 {object} controllers.TeacherSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /teacher/{id} [put]
func (c *TeacherController) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.Service.UpdateTeacher(r.Context(), r.PathValue("id"), req.toInput(nil))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "teacher not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, t)
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data.deleted is true"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /teacher/{id} [delete]
func (c *TeacherController) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteTeacher(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, c.Logger, err, "teacher not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
