package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// CreateAdmissionRequest is the request body for POST /send-data.
type CreateAdmissionRequest struct {
	Name      string `json:"name" validate:"notblank"`
	CivilIDNo string `json:"civilIdNo"`
	DOB       string `json:"dob" validate:"required,datetime=2006-01-02"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"required,email"`
	Gender    string `json:"gender"`
	Course    string `json:"course"`
	Location  string `json:"location"`
	School    string `json:"school"`
	Grade     string `json:"grade"`
}

// AdmissionSuccessResponse is the success response envelope for a single admission.
type AdmissionSuccessResponse struct {
	Data  *domain.Admission `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListAdmissionsSuccessResponse is the success response envelope for GET /admissionsform (200).
type ListAdmissionsSuccessResponse struct {
	Data  []*domain.Admission `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type AdmissionController struct {
	Logger  *slog.Logger
	Service domain.AdmissionService
}

func NewAdmissionController(logger *slog.Logger, svc domain.AdmissionService) *AdmissionController {
	return &AdmissionController{Logger: logger, Service: svc}
}

// SubmitAdmission godoc
// @Summary Submit an admission form
// @Description Applicants must be at least 5 years old. The submitter is emailed a summary after the response.
// @Tags admissions
// @Accept json
// @Produce json
// @Param body body CreateAdmissionRequest true "Admission form"
// @Success 201 {object} controllers.AdmissionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /send-data [post]
func (c *AdmissionController) SubmitAdmission(w http.ResponseWriter, r *http.Request) {
	var req CreateAdmissionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	dob, _ := time.Parse(time.DateOnly, req.DOB)
	a := &domain.Admission{
		FullName:  strings.TrimSpace(req.Name),
		CivilIDNo: strings.TrimSpace(req.CivilIDNo),
		DOB:       dob,
		Address:   req.Address,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Gender:    req.Gender,
		Course:    req.Course,
		Location:  req.Location,
		School:    req.School,
		Grade:     req.Grade,
	}
	if err := c.Service.SubmitAdmission(r.Context(), a); err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, a)
	helpers.Flush(w)

	c.Service.AcknowledgeAdmission(r.Context(), a)
}

// ListAdmissions godoc
// @Summary List admission forms
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListAdmissionsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admissionsform [get]
func (c *AdmissionController) ListAdmissions(w http.ResponseWriter, r *http.Request) {
	admissions, err := c.Service.ListAdmissions(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, admissions)
}

// SetRespond godoc
// @Summary Mark an admission as answered or not
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID (UUID)"
// @Param body body RespondRequest true "Respond flag"
// @Success 200 {object} controllers.AdmissionSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admission/{id} [put]
func (c *AdmissionController) SetRespond(w http.ResponseWriter, r *http.Request) {
	var req RespondRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	a, err := c.Service.SetRespond(r.Context(), r.PathValue("id"), req.Respond)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "admission not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, a)
}
