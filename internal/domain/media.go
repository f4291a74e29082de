package domain

import (
	"context"
	"io"
)

// MediaCategory is the destination folder of an uploaded image.
type MediaCategory string

const (
	MediaEvents   MediaCategory = "events"
	MediaGallery  MediaCategory = "gallery"
	MediaTeachers MediaCategory = "teacher"
)

// Upload is an image attached to a create request.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaUploader stores an image in external object storage and returns its durable URL.
type MediaUploader interface {
	Upload(ctx context.Context, category MediaCategory, file *Upload) (url string, err error)
}
