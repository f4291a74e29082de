package helpers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"communitysite/internal/domain"
)

const multipartMemory = 8 << 20

// IsMultipart reports whether the request body is multipart/form-data.
func IsMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// IsURLEncoded reports whether the request body is application/x-www-form-urlencoded.
func IsURLEncoded(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/x-www-form-urlencoded"
}

// ParseURLEncoded limits the body to maxBytes and parses the urlencoded form so its
// fields are readable through FormValue. On failure it writes a 400 JSON error and returns false.
func ParseURLEncoded(w http.ResponseWriter, r *http.Request, maxBytes int64) bool {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	if err := r.ParseForm(); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("invalid form body: %v", err))
		return false
	}
	return true
}

// ParseMultipart limits the body to maxBytes and parses the form. On failure it writes
// a 400 JSON error and returns false.
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) bool {
	if maxBytes > 0 {
		// Leave room for the text fields around the file part.
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartMemory)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "request body too large")
			return false
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("invalid multipart form: %v", err))
		return false
	}
	return true
}

// FormValue returns the trimmed value of a multipart or urlencoded field.
func FormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// FormUpload returns the file attached under field, or nil when none was sent.
// The returned upload reads from the parsed form, which lives until the request ends.
func FormUpload(r *http.Request, field string) (*domain.Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, nil
}

// CloseUpload releases the file behind an upload returned by FormUpload.
func CloseUpload(u *domain.Upload) {
	if u == nil {
		return
	}
	if c, ok := u.Body.(io.Closer); ok {
		_ = c.Close()
	}
}
