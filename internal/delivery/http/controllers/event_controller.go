package controllers

import (
	"bytes"
	"log/slog"
	"net/http"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// CreateEventRequest is the JSON body for POST /events. Multipart requests carry the same
// field names plus an optional "image" file. The flags accept booleans, "true"/"on"/"1" or 1.
type CreateEventRequest struct {
	Event string `json:"event" form:"event"`
	Post  string `json:"post" form:"post"`
	Date  string `json:"date" form:"date"`
	Home  any    `json:"home" form:"home" swaggertype:"string"`
	SMS   any    `json:"sms" form:"sms" swaggertype:"string"`
	Mail  any    `json:"mail" form:"mail" swaggertype:"string"`
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.EventPublication `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ListEventsSuccessResponse is the success response envelope for event lists (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger         *slog.Logger
	Service        domain.EventService
	ICS            domain.CalendarEncoder
	MaxUploadBytes int64
}

func NewEventController(logger *slog.Logger, svc domain.EventService, calendar domain.CalendarEncoder, maxUploadBytes int64) *EventController {
	return &EventController{
		Logger:         logger,
		Service:        svc,
		ICS:            calendar,
		MaxUploadBytes: maxUploadBytes,
	}
}

// CreateEvent godoc
// @Summary Publish an event
// @Description Uploads the optional image, stores the event and returns it. When sms is set the response carries a share_url deep link; when mail is set every gallery member is emailed after the response is sent.
// @Tags events
// @Accept multipart/form-data
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event formData string false "Title"
// @Param post formData string false "Body"
// @Param date formData string false "Date (YYYY-MM-DD)"
// @Param home formData string false "Show on the home feed"
// @Param sms formData string false "Build a share link"
// @Param mail formData string false "Email gallery members"
// @Param image formData file false "JPG or PNG image"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the event and share_url"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 502 {object} helpers.APIResponse "error.code: upload_failed"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	in, ok := c.readPublishInput(w, r)
	if !ok {
		return
	}
	defer helpers.CloseUpload(in.Image)

	pub, err := c.Service.PublishEvent(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	c.Logger.InfoContext(r.Context(), "event published", "by", actingAdmin(r), "event_id", pub.Event.ID)
	helpers.WriteJSONSuccess(w, http.StatusCreated, pub)
	helpers.Flush(w)

	c.Service.AnnounceEvent(r.Context(), pub.Event)
}

// readPublishInput accepts multipart, urlencoded or JSON bodies. Form flags arrive as strings;
// JSON flags keep their decoded type. Unknown JSON keys are ignored.
func (c *EventController) readPublishInput(w http.ResponseWriter, r *http.Request) (*domain.PublishEventInput, bool) {
	switch {
	case helpers.IsMultipart(r):
		if !helpers.ParseMultipart(w, r, c.MaxUploadBytes) {
			return nil, false
		}
		image, err := helpers.FormUpload(r, "image")
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid image field")
			return nil, false
		}
		in := formPublishInput(r)
		in.Image = image
		return in, true
	case helpers.IsURLEncoded(r):
		if !helpers.ParseURLEncoded(w, r, c.MaxUploadBytes) {
			return nil, false
		}
		return formPublishInput(r), true
	default:
		var req CreateEventRequest
		if !helpers.DecodePermissive(w, r, &req) {
			return nil, false
		}
		return &domain.PublishEventInput{
			Title: req.Event,
			Body:  req.Post,
			Date:  req.Date,
			Home:  req.Home,
			SMS:   req.SMS,
			Mail:  req.Mail,
		}, true
	}
}

func formPublishInput(r *http.Request) *domain.PublishEventInput {
	return &domain.PublishEventInput{
		Title: helpers.FormValue(r, "event"),
		Body:  helpers.FormValue(r, "post"),
		Date:  helpers.FormValue(r, "date"),
		Home:  helpers.FormValue(r, "home"),
		SMS:   helpers.FormValue(r, "sms"),
		Mail:  helpers.FormValue(r, "mail"),
	}
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListHomeEvents godoc
// @Summary List events shown on the home page
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notifications [get]
func (c *EventController) ListHomeEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListHomeEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data.deleted is true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	c.Logger.InfoContext(r.Context(), "event deleted", "by", actingAdmin(r), "event_id", id)
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Calendar godoc
// @Summary Events as an iCalendar feed
// @Description All-day entries for every event with a readable date.
// @Tags events
// @Produce text/calendar
// @Success 200 {string} string "VCALENDAR document"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events.ics [get]
func (c *EventController) Calendar(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	var buf bytes.Buffer
	if err := c.ICS.Encode(&buf, events); err != nil {
		writeServiceError(w, r, c.Logger, err, "")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
