package controllers

import (
	"log/slog"
	"net/http"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// GenerateRequest is the request body for POST /generate.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"notblank"`
}

// GenerateResponse is the response body for POST /generate.
type GenerateResponse struct {
	Text string `json:"text"`
}

// GenerateSuccessResponse is the success response envelope for POST /generate (200).
type GenerateSuccessResponse struct {
	Data  GenerateResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type DraftController struct {
	Logger  *slog.Logger
	Service domain.DraftService
}

func NewDraftController(logger *slog.Logger, svc domain.DraftService) *DraftController {
	return &DraftController{Logger: logger, Service: svc}
}

// Generate godoc
// @Summary Draft copy with the hosted text model
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateRequest true "Prompt"
// @Success 200 {object} controllers.GenerateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /generate [post]
func (c *DraftController) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	text, err := c.Service.Draft(r.Context(), req.Prompt)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GenerateResponse{Text: text})
}
