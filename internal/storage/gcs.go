package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSSink struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSSink(ctx context.Context, bucket, prefix, credentialsFile string) (*GCSSink, error) {
	if err := requireBucket("gs", bucket); err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSSink{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(prefix),
	}, nil
}

func (s *GCSSink) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := joinKey(s.prefix, name)

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload gs://%s/%s: %w", s.bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to upload gs://%s/%s: %w", s.bucket, key, err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, key), nil
}

func (s *GCSSink) Close() error {
	return s.client.Close()
}
