package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type LocalSink struct {
	dir string
}

func NewLocalSink(dir string) *LocalSink {
	return &LocalSink{dir: dir}
}

func (s *LocalSink) Put(_ context.Context, name string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	return path, nil
}

func (s *LocalSink) Close() error {
	return nil
}
