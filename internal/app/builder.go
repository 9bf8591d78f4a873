package app

import (
	"context"

	"storyreel/internal/gateway"
	"storyreel/internal/storage"
	"storyreel/pkg/config"
	"storyreel/pkg/prompts"
)

// BuildGateway wires a gateway from the loaded configuration.
func BuildGateway(cfg *config.Config) (*gateway.Gateway, error) {
	p, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	return gateway.New(gateway.Options{
		FallbackAPIKey:  cfg.GeminiAPIKey,
		SpeechModel:     cfg.Gemini.SpeechModel,
		StoryboardModel: cfg.Gemini.StoryboardModel,
		ImageModel:      cfg.Gemini.ImageModel,
		CheckModel:      cfg.Gemini.CheckModel,
		Prompts:         p,
	}), nil
}

func BuildService(cfg *config.Config) (*Service, error) {
	gw, err := BuildGateway(cfg)
	if err != nil {
		return nil, err
	}

	sinkOpts := storage.Options{
		GCSCredentialsFile: cfg.GCS.CredentialsFile,
		S3Region:           cfg.S3.Region,
	}

	return NewService(ServiceOptions{
		Config:  cfg,
		Gateway: gw,
		NewSink: func(ctx context.Context, dest string) (storage.Sink, error) {
			return storage.NewSink(ctx, dest, sinkOpts)
		},
	}), nil
}
