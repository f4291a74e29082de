package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communitysite/internal/delivery/http/helpers"
	"communitysite/internal/domain"
)

// writeServiceError maps a service error to its status and error code. Unknown errors
// are logged and answered with a generic 500 so internals are not echoed.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnsupportedMedia),
		errors.Is(err, domain.ErrUnderage):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrUploadFailed), errors.Is(err, domain.ErrUploadsDisabled):
		logger.WarnContext(r.Context(), "upload failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUploadFailed, "image upload failed")
	case errors.Is(err, domain.ErrGenerationFailed):
		logger.WarnContext(r.Context(), "upstream failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstream, "text generation failed")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "server error")
	}
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput)
}
