package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/hairloom/salon-booking/internal/config"
)

// Uploader pushes stylist photos to S3 (or an S3-compatible endpoint).
type Uploader struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// NewUploader returns nil when no bucket is configured; photo uploads are
// then disabled and the handler reports that to the caller.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:   s3.New(opts),
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
	}
}

// UploadStylistPhoto converts the image to WebP and stores it under a
// fresh object key, returning the public URL.
func (u *Uploader) UploadStylistPhoto(
	ctx context.Context,
	stylistID uint,
	r io.Reader,
) (string, error) {

	body, err := encodePhoto(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("stylists/%d/%s.webp", stylistID, uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
