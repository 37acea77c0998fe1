// Package storage uploads logos to an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/padraicbc/paddock/config"
)

// Uploader stores an object and returns the URL it is publicly served from.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader writes to one bucket.
type S3Uploader struct {
	client        putObjectAPI
	bucket        string
	publicBaseURL string
}

// NewS3 builds an uploader from cfg. A custom endpoint (R2, MinIO) switches
// the client to path-style addressing.
func NewS3(ctx context.Context, cfg appconfig.S3Config) (*S3Uploader, error) {
	if !cfg.Enabled() {
		return nil, errors.New("storage: S3_BUCKET and S3_PUBLIC_BASE_URL are required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	sdkCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: loading aws config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(client, cfg.Bucket, cfg.PublicBaseURL), nil
}

func newS3Uploader(client putObjectAPI, bucket, publicBaseURL string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, publicBaseURL: publicBaseURL}
}

// Upload puts body under key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: uploading %s: %w", key, err)
	}
	return PublicURL(u.publicBaseURL, key)
}

// PublicURL joins a base URL and an object key with exactly one slash.
func PublicURL(base, key string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("storage: parsing public base url: %w", err)
	}
	u.Path = path.Join("/", u.Path, strings.TrimPrefix(key, "/"))
	return u.String(), nil
}
