// Package storage keeps exported documents in an S3-compatible bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"eventos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of *s3.Client the store needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3DocumentStore struct {
	client  s3API
	bucket  string
	baseURL string
}

var _ interfaces.IDocumentStore = (*S3DocumentStore)(nil)

// NewS3DocumentStore builds the store. A custom endpoint (R2, MinIO, LocalStack)
// switches to path-style addressing.
func NewS3DocumentStore(cfg aws.Config, bucket, endpoint, publicBaseURL string) *S3DocumentStore {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3DocumentStore(client, bucket, publicBaseURL)
}

func newS3DocumentStore(client s3API, bucket, publicBaseURL string) *S3DocumentStore {
	return &S3DocumentStore{client: client, bucket: bucket, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (s *S3DocumentStore) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}

	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key), nil
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
