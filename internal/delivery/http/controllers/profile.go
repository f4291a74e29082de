package controllers

import (
	"net/http"
	"strings"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// ProfileRequest is the body shared by gallery member and teacher create/update requests.
// Create accepts it as multipart form fields with an optional "image" file.
type ProfileRequest struct {
	Name        string `json:"mname" form:"mname" validate:"notblank"`
	Position    string `json:"position" form:"position"`
	Email       string `json:"email" form:"email" validate:"omitempty,email"`
	Place       string `json:"place" form:"place"`
	Description string `json:"description" form:"description"`
}

func (p ProfileRequest) toInput(image *domain.Upload) *domain.ProfileInput {
	return &domain.ProfileInput{
		Name:        p.Name,
		Position:    p.Position,
		Email:       p.Email,
		Place:       p.Place,
		Description: p.Description,
		Image:       image,
	}
}

// readProfileForm parses a multipart (or JSON) profile create request.
// On failure it has already written the 400 response.
func readProfileForm(w http.ResponseWriter, r *http.Request, maxUploadBytes int64) (*domain.ProfileInput, bool) {
	if !helpers.IsMultipart(r) {
		var req ProfileRequest
		if !helpers.DecodeAndValidate(w, r, &req) {
			return nil, false
		}
		return req.toInput(nil), true
	}
	if !helpers.ParseMultipart(w, r, maxUploadBytes) {
		return nil, false
	}
	req := ProfileRequest{
		Name:        helpers.FormValue(r, "mname"),
		Position:    helpers.FormValue(r, "position"),
		Email:       helpers.FormValue(r, "email"),
		Place:       helpers.FormValue(r, "place"),
		Description: helpers.FormValue(r, "description"),
	}
	if errs := helpers.ValidateStruct(req); len(errs) > 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(errs, "; "))
		return nil, false
	}
	image, err := helpers.FormUpload(r, "image")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid image field")
		return nil, false
	}
	return req.toInput(image), true
}
