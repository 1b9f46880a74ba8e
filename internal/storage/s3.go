package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/eternalrights/ssmp-go/internal/config"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, objectName string) (string, error)
}

// S3Uploader uploads files to an S3-compatible bucket (AWS or any
// MinIO-style endpoint via S3_ENDPOINT).
type S3Uploader struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

// NewS3Uploader builds an S3 client from the application config using
// static credentials.
func NewS3Uploader(ctx context.Context, cfg config.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:        client,
		bucket:        cfg.S3Bucket,
		region:        cfg.S3Region,
		publicBaseURL: cfg.S3PublicBaseURL,
	}, nil
}

// Upload puts the object into the bucket and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, objectName string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(objectName),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", objectName, err)
	}

	return u.ObjectURL(objectName), nil
}

// ObjectURL renders the public URL for a stored object.
func (u *S3Uploader) ObjectURL(objectName string) string {
	if u.publicBaseURL != "" {
		return strings.TrimSuffix(u.publicBaseURL, "/") + "/" + objectName
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, objectName)
}
