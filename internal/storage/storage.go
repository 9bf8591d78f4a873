// Package storage writes render artifacts to a local directory or a cloud bucket.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Sink stores named artifacts. Put returns the artifact's location.
type Sink interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Close() error
}

type Options struct {
	GCSCredentialsFile string
	S3Region           string
}

// NewSink picks an implementation from dest: gs://bucket/prefix,
// s3://bucket/prefix, or a local directory path.
func NewSink(ctx context.Context, dest string, opts Options) (Sink, error) {
	scheme, bucket, prefix := parseDestination(dest)
	switch scheme {
	case "gs":
		return NewGCSSink(ctx, bucket, prefix, opts.GCSCredentialsFile)
	case "s3":
		return NewS3Sink(ctx, bucket, prefix, opts.S3Region)
	default:
		return NewLocalSink(dest), nil
	}
}

func parseDestination(dest string) (scheme, bucket, prefix string) {
	for _, s := range []string{"gs", "s3"} {
		rest, ok := strings.CutPrefix(dest, s+"://")
		if !ok {
			continue
		}
		bucket, prefix, _ = strings.Cut(rest, "/")
		return s, bucket, normalizePrefix(prefix)
	}
	return "", "", dest
}

func normalizePrefix(prefix string) string {
	return strings.Trim(prefix, "/")
}

func joinKey(parts ...string) string {
	var clean []string
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			clean = append(clean, p)
		}
	}
	return path.Join(clean...)
}

func requireBucket(scheme, bucket string) error {
	if bucket == "" {
		return fmt.Errorf("%s destination is missing a bucket name", scheme)
	}
	return nil
}
