package app

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"storyreel/internal/gateway"
	"storyreel/internal/storage"
)

type Pipeline struct {
	service *Service
	now     func() time.Time
}

type RenderRequest struct {
	Text   string
	APIKey string
	// StyleReference is an optional data-URI applied to every scene image.
	StyleReference string
	// Output overrides the configured render destination.
	Output string
}

type SceneResult struct {
	Index         int    `json:"index"`
	NarrativeText string `json:"narrativeText"`
	ImagePrompt   string `json:"imagePrompt"`
	Image         string `json:"image,omitempty"`
	Audio         string `json:"audio,omitempty"`
	HasCharacter  *bool  `json:"hasCharacter,omitempty"`
}

type RenderResult struct {
	RunID    string        `json:"runId"`
	Manifest string        `json:"-"`
	Scenes   []SceneResult `json:"scenes"`
}

func NewPipeline(service *Service) *Pipeline {
	return &Pipeline{service: service, now: time.Now}
}

// Render decomposes the text and produces an image and narration for every
// scene. Scenes run concurrently up to the configured limit; the manifest
// keeps narrative order.
func (pipeline *Pipeline) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	cfg := pipeline.service.Config()
	gw := pipeline.service.Gateway()

	slog.Info("Decomposing storyboard...", "length", len(req.Text))
	segments, err := gw.DecomposeStoryboard(ctx, req.Text, req.APIKey)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("storyboard produced no scenes")
	}

	dest := req.Output
	if dest == "" {
		dest = cfg.Render.Output
	}
	sink, err := pipeline.service.OpenSink(ctx, dest)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	defer func() { _ = sink.Close() }()

	run := newSession(segments[0].NarrativeText, pipeline.now())
	scenes := make([]SceneResult, len(segments))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(cfg.Render.Concurrency, 1))

	for i, segment := range segments {
		eg.Go(func() error {
			scene, err := pipeline.renderScene(egCtx, sink, run, i, segment, req)
			if err != nil {
				return fmt.Errorf("scene %d: %w", i+1, err)
			}
			scenes[i] = *scene
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &RenderResult{RunID: run.id, Scenes: scenes}
	manifest, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	result.Manifest, err = sink.Put(ctx, run.manifestName(), manifest, "application/json")
	if err != nil {
		return nil, err
	}

	slog.Info("Render complete", "run", run.id, "scenes", len(scenes), "manifest", result.Manifest)
	return result, nil
}

func (pipeline *Pipeline) renderScene(ctx context.Context, sink storage.Sink, run *session, index int, segment gateway.StoryboardSegment, req RenderRequest) (*SceneResult, error) {
	cfg := pipeline.service.Config()
	gw := pipeline.service.Gateway()
	logger := slog.With("scene", index+1)

	scene := &SceneResult{
		Index:         index,
		NarrativeText: segment.NarrativeText,
		ImagePrompt:   segment.ImagePrompt,
	}

	startTime := time.Now()
	image, err := gw.GenerateSceneImage(ctx, gateway.SceneImageRequest{
		Prompt:         segment.ImagePrompt,
		ReferenceImage: req.StyleReference,
		APIKey:         req.APIKey,
	})
	if err != nil {
		return nil, err
	}

	if image == "" {
		logger.Warn("No image produced")
	} else {
		parsed := gateway.ParseDataURI(image)
		data, err := parsed.Bytes()
		if err != nil {
			return nil, err
		}
		if scene.Image, err = sink.Put(ctx, run.imageName(index, parsed.MIMEType), data, parsed.MIMEType); err != nil {
			return nil, err
		}
		if !cfg.Render.SkipCharacterCheck {
			hasCharacter := gw.HasCharacter(ctx, image, req.APIKey)
			scene.HasCharacter = &hasCharacter
		}
	}

	audio, err := gw.SynthesizeSpeech(ctx, gateway.SpeechRequest{
		Text:        segment.NarrativeText,
		Voice:       gateway.Voice(cfg.Speech.Voice),
		StylePrompt: cfg.Speech.StylePrompt,
		APIKey:      req.APIKey,
	})
	if err != nil {
		return nil, err
	}

	if audio == "" {
		logger.Warn("No audio produced")
	} else {
		pcm, err := base64.StdEncoding.DecodeString(audio)
		if err != nil {
			return nil, fmt.Errorf("decode audio: %w", err)
		}
		if scene.Audio, err = sink.Put(ctx, run.audioName(index), WAV(pcm, SpeechSampleRate), "audio/wav"); err != nil {
			return nil, err
		}
	}

	logger.Info("Scene rendered", "duration", time.Since(startTime).Round(time.Millisecond))
	return scene, nil
}
