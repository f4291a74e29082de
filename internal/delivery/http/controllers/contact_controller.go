package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// CreateContactRequest is the request body for POST /contacts.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"required,email"`
	Mobile  string `json:"mobile"`
	Message string `json:"message" validate:"notblank"`
}

// RespondRequest is the request body for the respond-flag endpoints.
type RespondRequest struct {
	Respond bool `json:"respond"`
}

// ReplyRequest is the request body for POST /sent-reply.
type ReplyRequest struct {
	ToEmail string `json:"toEmail" validate:"required,email"`
	Message string `json:"message" validate:"notblank"`
	Date    string `json:"date"`
}

// ContactSuccessResponse is the success response envelope for a single contact.
type ContactSuccessResponse struct {
	Data  *domain.Contact   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListContactsSuccessResponse is the success response envelope for contact lists (200).
type ListContactsSuccessResponse struct {
	Data  []*domain.Contact `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// SubmitContact godoc
// @Summary Send a contact message
// @Description Stores the message, responds, then emails the sender a copy and forwards one to the admin address.
// @Tags contacts
// @Accept json
// @Produce json
// @Param body body CreateContactRequest true "Contact message"
// @Success 201 {object} controllers.ContactSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contacts [post]
func (c *ContactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	contact := &domain.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Mobile:  strings.TrimSpace(req.Mobile),
		Message: req.Message,
	}
	if err := c.Service.SubmitContact(r.Context(), contact); err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, contact)
	helpers.Flush(w)

	c.Service.AcknowledgeContact(r.Context(), contact)
}

// ListContacts godoc
// @Summary List contact messages
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListContactsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /contactsview [get]
func (c *ContactController) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.Service.ListContacts(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, contacts)
}

// SetRespond godoc
// @Summary Mark a contact message as answered or not
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID (UUID)"
// @Param body body RespondRequest true "Respond flag"
// @Success 200 {object} controllers.ContactSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /contacts/{id} [put]
func (c *ContactController) SetRespond(w http.ResponseWriter, r *http.Request) {
	var req RespondRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	contact, err := c.Service.SetRespond(r.Context(), r.PathValue("id"), req.Respond)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "contact not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, contact)
}

// Reply godoc
// @Summary Email a reply to a contact message
// @Description Sent synchronously; a provider failure is reported as 502.
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ReplyRequest true "Reply"
// @Success 200 {object} helpers.APIResponse "data.sent is true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /sent-reply [post]
func (c *ContactController) Reply(w http.ResponseWriter, r *http.Request) {
	var req ReplyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.Reply(r.Context(), &domain.ContactReplyInput{
		ToEmail: strings.TrimSpace(req.ToEmail),
		Message: req.Message,
		Date:    req.Date,
	})
	if err != nil {
		if isClientError(err) {
			writeServiceError(w, r, c.Logger, err, "")
			return
		}
		c.Logger.ErrorContext(r.Context(), "reply email failed", "to", req.ToEmail, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstream, "failed to send reply")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"sent": true})
}
