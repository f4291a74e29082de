package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"communitysite/internal/domain"
)

// contentTypes lists the accepted image extensions.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// S3Config holds configuration for the S3 uploader.
type S3Config struct {
	Bucket          string
	PublicBaseURL   string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional S3-compatible endpoint; switches to path-style addressing
	MaxBytes        int64
}

// UploaderConfig holds configuration for creating a media uploader.
type UploaderConfig struct {
	Provider string
	S3       S3Config
	Logger   *slog.Logger
}

// NewUploader creates a MediaUploader from config. Provider "s3" stores objects in S3;
// "disabled" or unknown rejects every upload with domain.ErrUploadsDisabled.
func NewUploader(config UploaderConfig) (domain.MediaUploader, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	switch config.Provider {
	case "s3":
		c := config.S3
		if c.Bucket == "" {
			return nil, fmt.Errorf("media bucket is required")
		}
		if c.PublicBaseURL == "" {
			return nil, fmt.Errorf("media public base url is required")
		}
		awsCfg := aws.Config{
			Region: c.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
			),
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if c.Endpoint != "" {
				o.BaseEndpoint = aws.String(c.Endpoint)
				o.UsePathStyle = true
			}
		})
		return &s3Uploader{
			client:   client,
			bucket:   c.Bucket,
			baseURL:  strings.TrimSuffix(c.PublicBaseURL, "/"),
			maxBytes: c.MaxBytes,
			newKey:   func() string { return uuid.NewString() },
			logger:   logger,
		}, nil
	case "disabled":
		return disabledUploader{}, nil
	default:
		logger.Warn("unknown media provider, uploads disabled", "provider", config.Provider)
		return disabledUploader{}, nil
	}
}

// ContentType returns the MIME type for an accepted image filename or
// domain.ErrUnsupportedMedia for anything other than jpg, jpeg or png.
func ContentType(filename string) (string, error) {
	ct, ok := contentTypes[strings.ToLower(path.Ext(filename))]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedMedia, filename)
	}
	return ct, nil
}

type s3Uploader struct {
	client   *s3.Client
	bucket   string
	baseURL  string
	maxBytes int64
	newKey   func() string
	logger   *slog.Logger
}

func (u *s3Uploader) Upload(ctx context.Context, category domain.MediaCategory, file *domain.Upload) (string, error) {
	contentType, err := ContentType(file.Filename)
	if err != nil {
		return "", err
	}
	body, err := u.readBody(file.Body)
	if err != nil {
		return "", err
	}
	key := string(category) + "/" + u.newKey() + strings.ToLower(path.Ext(file.Filename))
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %v", domain.ErrUploadFailed, key, err)
	}
	u.logger.Info("image uploaded", "category", category, "key", key, "bytes", len(body))
	return u.baseURL + "/" + key, nil
}

// readBody buffers the upload so the SDK can sign a seekable payload.
func (u *s3Uploader) readBody(r io.Reader) ([]byte, error) {
	if u.maxBytes > 0 {
		r = io.LimitReader(r, u.maxBytes+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", domain.ErrUploadFailed, err)
	}
	if u.maxBytes > 0 && int64(len(body)) > u.maxBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", domain.ErrUnsupportedMedia, u.maxBytes)
	}
	return body, nil
}

type disabledUploader struct{}

func (disabledUploader) Upload(_ context.Context, _ domain.MediaCategory, file *domain.Upload) (string, error) {
	if _, err := ContentType(file.Filename); err != nil {
		return "", err
	}
	return "", domain.ErrUploadsDisabled
}
