package media

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communitysite/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{filename: "poster.jpg", want: "image/jpeg"},
		{filename: "poster.JPEG", want: "image/jpeg"},
		{filename: "logo.png", want: "image/png"},
		{filename: "anim.gif", wantErr: true},
		{filename: "notes.pdf", wantErr: true},
		{filename: "noext", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := ContentType(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewUploader_Disabled(t *testing.T) {
	u, err := NewUploader(UploaderConfig{Provider: "disabled", Logger: discardLogger()})
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), domain.MediaEvents, &domain.Upload{Filename: "a.png", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrUploadsDisabled)

	_, err = u.Upload(context.Background(), domain.MediaEvents, &domain.Upload{Filename: "a.bmp", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestNewUploader_S3RequiresBucketAndBaseURL(t *testing.T) {
	_, err := NewUploader(UploaderConfig{Provider: "s3", S3: S3Config{PublicBaseURL: "https://cdn"}})
	assert.Error(t, err)
	_, err = NewUploader(UploaderConfig{Provider: "s3", S3: S3Config{Bucket: "b"}})
	assert.Error(t, err)
}

func newTestS3Uploader(t *testing.T, endpoint string, maxBytes int64) *s3Uploader {
	t.Helper()
	u, err := NewUploader(UploaderConfig{
		Provider: "s3",
		S3: S3Config{
			Bucket:          "site-media",
			PublicBaseURL:   "https://cdn.example.org/",
			Region:          "us-east-1",
			AccessKeyID:     "AKIDEXAMPLE",
			SecretAccessKey: "secret",
			Endpoint:        endpoint,
			MaxBytes:        maxBytes,
		},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	s, ok := u.(*s3Uploader)
	require.True(t, ok)
	s.newKey = func() string { return "fixed-key" }
	return s
}

func TestS3Uploader_Upload(t *testing.T) {
	var method, gotPath, contentType string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		gotPath = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u := newTestS3Uploader(t, srv.URL, 1024)
	url, err := u.Upload(context.Background(), domain.MediaEvents, &domain.Upload{
		Filename: "Pongal.PNG",
		Body:     strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.org/events/fixed-key.png", url)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/site-media/events/fixed-key.png", gotPath)
	assert.Equal(t, "image/png", contentType)
	assert.Contains(t, string(body), "png-bytes")
}

func TestS3Uploader_UploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<Error><Code>AccessDenied</Code><Message>denied</Message></Error>`))
	}))
	defer srv.Close()

	u := newTestS3Uploader(t, srv.URL, 1024)
	_, err := u.Upload(context.Background(), domain.MediaGallery, &domain.Upload{
		Filename: "m.jpg",
		Body:     strings.NewReader("jpg"),
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestS3Uploader_RejectsOversizeAndUnsupported(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u := newTestS3Uploader(t, srv.URL, 4)
	_, err := u.Upload(context.Background(), domain.MediaTeachers, &domain.Upload{Filename: "t.jpg", Body: strings.NewReader("too large")})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	_, err = u.Upload(context.Background(), domain.MediaTeachers, &domain.Upload{Filename: "t.svg", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
	assert.Zero(t, calls)
}
