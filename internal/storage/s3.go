package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Sink struct {
	client s3API
	bucket string
	prefix string
}

func NewS3Sink(ctx context.Context, bucket, prefix, region string) (*S3Sink, error) {
	if err := requireBucket("s3", bucket); err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3SinkWithClient(bucket, prefix, s3.NewFromConfig(cfg)), nil
}

func NewS3SinkWithClient(bucket, prefix string, client s3API) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(prefix),
	}
}

func (s *S3Sink) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := joinKey(s.prefix, name)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload s3://%s/%s: %w", s.bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

func (s *S3Sink) Close() error {
	return nil
}
