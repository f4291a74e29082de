package domain

import "errors"

// Sentinel errors shared by services and repositories. Controllers map them to status codes with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnsupportedMedia   = errors.New("unsupported image format")
	ErrUploadsDisabled    = errors.New("media uploads are not configured")
	ErrUploadFailed       = errors.New("image upload failed")
	ErrGenerationFailed   = errors.New("text generation failed")
	ErrUnderage           = errors.New("applicant is below the minimum admission age")
)
