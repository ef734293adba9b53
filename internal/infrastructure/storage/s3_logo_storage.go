package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"parceiros_internet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultLogoBucket = "company-logos"

// S3LogoStorage stores partner logos in an S3 bucket and serves them through
// a public base URL (bucket website or CDN).
//
// Supported env vars:
//   - LOGO_BUCKET (default: company-logos)
//   - LOGO_PUBLIC_BASE_URL (default: https://<bucket>.s3.amazonaws.com)
type S3LogoStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.ILogoStorage = (*S3LogoStorage)(nil)

func NewS3LogoStorage(ctx context.Context) (*S3LogoStorage, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "sa-east-1"
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for s3: %w", err)
	}

	bucket := os.Getenv("LOGO_BUCKET")
	if bucket == "" {
		bucket = defaultLogoBucket
	}
	baseURL := os.Getenv("LOGO_PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}

	return &S3LogoStorage{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *S3LogoStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload logo to s3: %w", err)
	}
	url := fmt.Sprintf("%s/%s", s.baseURL, key)
	log.Printf("[storage][logo] uploaded key=%s", key)
	return url, nil
}

func (s *S3LogoStorage) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to remove logo from s3: %w", err)
	}
	return nil
}
