package app

import (
	"context"

	"storyreel/internal/gateway"
	"storyreel/internal/storage"
	"storyreel/pkg/config"
)

// Generator is the part of the gateway the pipeline drives.
type Generator interface {
	DecomposeStoryboard(ctx context.Context, fullText, apiKey string) ([]gateway.StoryboardSegment, error)
	GenerateSceneImage(ctx context.Context, req gateway.SceneImageRequest) (string, error)
	SynthesizeSpeech(ctx context.Context, req gateway.SpeechRequest) (string, error)
	HasCharacter(ctx context.Context, imageDataURI, apiKey string) bool
}

// SinkFactory opens an artifact sink for a destination.
type SinkFactory func(ctx context.Context, dest string) (storage.Sink, error)

type Service struct {
	cfg     *config.Config
	gateway Generator
	newSink SinkFactory
}

type ServiceOptions struct {
	Config  *config.Config
	Gateway Generator
	NewSink SinkFactory
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		cfg:     opts.Config,
		gateway: opts.Gateway,
		newSink: opts.NewSink,
	}
}

func (s *Service) Config() *config.Config { return s.cfg }
func (s *Service) Gateway() Generator     { return s.gateway }

func (s *Service) OpenSink(ctx context.Context, dest string) (storage.Sink, error) {
	return s.newSink(ctx, dest)
}
