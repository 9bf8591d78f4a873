package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"storyreel/pkg/prompts"
)

// StoryboardSegment is one scene: the verbatim source sentence and the prompt for its image.
type StoryboardSegment struct {
	NarrativeText string `json:"narrativeText"`
	ImagePrompt   string `json:"imagePrompt"`
}

var storyboardSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"narrativeText": {Type: genai.TypeString, Description: "Exact sentence or phrase from the source text"},
			"imagePrompt":   {Type: genai.TypeString, Description: "Cinematic 9:16 image generation prompt"},
		},
		Required: []string{"narrativeText", "imagePrompt"},
	},
}

var (
	leadingFenceRegex  = regexp.MustCompile("^```(?:json)?\\s*")
	trailingFenceRegex = regexp.MustCompile("\\s*```$")
)

// DecomposeStoryboard splits fullText into scenes in narrative order.
func (g *Gateway) DecomposeStoryboard(ctx context.Context, fullText, apiKey string) ([]StoryboardSegment, error) {
	const op = "decompose storyboard"

	client, err := g.client(ctx, apiKey)
	if err != nil {
		return nil, fail(ctx, op, err)
	}
	if strings.TrimSpace(fullText) == "" {
		return nil, fail(ctx, op, ErrEmptyText)
	}

	prompt, err := g.prompts.RenderStoryboard(prompts.StoryboardParams{Text: fullText})
	if err != nil {
		return nil, fail(ctx, op, fmt.Errorf("render prompt: %w", err))
	}

	resp, err := client.GenerateContent(ctx, g.storyboardModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   storyboardSchema,
	})
	if err != nil {
		return nil, fail(ctx, op, err)
	}

	segments, err := parseStoryboard(responseText(resp))
	if err != nil {
		return nil, fail(ctx, op, err)
	}
	return segments, nil
}

func parseStoryboard(text string) ([]StoryboardSegment, error) {
	if text == "" {
		text = "[]"
	}

	var segments []StoryboardSegment
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &segments); err != nil {
		return nil, fmt.Errorf("parse storyboard: %w", err)
	}
	if segments == nil {
		segments = []StoryboardSegment{}
	}
	return segments, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = leadingFenceRegex.ReplaceAllString(text, "")
	text = trailingFenceRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
