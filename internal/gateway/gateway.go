// Package gateway issues speech, storyboard, image and character-check
// requests to Gemini and normalizes the responses.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"storyreel/pkg/prompts"
)

const (
	DefaultSpeechModel     = "gemini-2.5-flash-preview-tts"
	DefaultStoryboardModel = "gemini-2.5-flash"
	DefaultImageModel      = "gemini-2.5-flash-image"
	DefaultCheckModel      = "gemini-2.5-flash"

	sceneAspectRatio = "9:16"
)

// ContentGenerator is the slice of the genai client the gateway uses.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientFactory builds a remote client for one call from a resolved API key.
type ClientFactory func(ctx context.Context, apiKey string) (ContentGenerator, error)

// NewGenAIClient is the default ClientFactory.
func NewGenAIClient(ctx context.Context, apiKey string) (ContentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client.Models, nil
}

type Options struct {
	// FallbackAPIKey is used when a call carries no key of its own.
	FallbackAPIKey  string
	SpeechModel     string
	StoryboardModel string
	ImageModel      string
	CheckModel      string
	Prompts         *prompts.Prompts
	NewClient       ClientFactory
}

// Gateway holds no per-call state; every method may be called concurrently.
type Gateway struct {
	fallbackAPIKey  string
	speechModel     string
	storyboardModel string
	imageModel      string
	checkModel      string
	prompts         *prompts.Prompts
	newClient       ClientFactory
}

func New(opts Options) *Gateway {
	g := &Gateway{
		fallbackAPIKey:  opts.FallbackAPIKey,
		speechModel:     opts.SpeechModel,
		storyboardModel: opts.StoryboardModel,
		imageModel:      opts.ImageModel,
		checkModel:      opts.CheckModel,
		prompts:         opts.Prompts,
		newClient:       opts.NewClient,
	}
	if g.speechModel == "" {
		g.speechModel = DefaultSpeechModel
	}
	if g.storyboardModel == "" {
		g.storyboardModel = DefaultStoryboardModel
	}
	if g.imageModel == "" {
		g.imageModel = DefaultImageModel
	}
	if g.checkModel == "" {
		g.checkModel = DefaultCheckModel
	}
	if g.prompts == nil {
		g.prompts = prompts.Default()
	}
	if g.newClient == nil {
		g.newClient = NewGenAIClient
	}
	return g
}

// HasFallbackCredential reports whether a process-wide key is configured.
func (g *Gateway) HasFallbackCredential() bool {
	return g.fallbackAPIKey != ""
}

func (g *Gateway) client(ctx context.Context, apiKey string) (ContentGenerator, error) {
	key, err := ResolveCredential(apiKey, g.fallbackAPIKey)
	if err != nil {
		return nil, err
	}
	return g.newClient(ctx, key)
}

// fail logs err under op and returns it wrapped so errors.Is still matches the cause.
func fail(ctx context.Context, op string, err error) error {
	slog.ErrorContext(ctx, "Gemini request failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return nil
	}
	return candidate.Content.Parts
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}
