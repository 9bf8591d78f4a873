package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// FailOpenCharacterResult is what HasCharacter reports whenever it cannot get
// a real answer, so a missing key or a failed call never halts a pipeline.
const FailOpenCharacterResult = true

var characterSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"hasCharacter": {Type: genai.TypeBoolean},
	},
	Required: []string{"hasCharacter"},
}

// HasCharacter reports whether a person, character, skeleton or humanoid
// figure is the main subject of the image. It never returns an error.
func (g *Gateway) HasCharacter(ctx context.Context, imageDataURI, apiKey string) bool {
	if apiKey == "" && g.fallbackAPIKey == "" {
		slog.WarnContext(ctx, "No API key for character check, assuming character present")
		return FailOpenCharacterResult
	}

	result, err := g.checkCharacter(ctx, imageDataURI, apiKey)
	if err != nil {
		slog.WarnContext(ctx, "Character check failed, assuming character present", "error", err)
		return FailOpenCharacterResult
	}
	return result
}

func (g *Gateway) checkCharacter(ctx context.Context, imageDataURI, apiKey string) (bool, error) {
	client, err := g.client(ctx, apiKey)
	if err != nil {
		return false, err
	}

	image := ParseDataURI(imageDataURI)
	data, err := image.Bytes()
	if err != nil {
		return false, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, image.MIMEType),
			genai.NewPartFromText(g.prompts.CharacterCheck()),
		}, genai.RoleUser),
	}

	resp, err := client.GenerateContent(ctx, g.checkModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   characterSchema,
	})
	if err != nil {
		return false, fmt.Errorf("generate: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return FailOpenCharacterResult, nil
	}
	return parseCharacterResult(text)
}

func parseCharacterResult(text string) (bool, error) {
	var result struct {
		HasCharacter any `json:"hasCharacter"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &result); err != nil {
		return false, fmt.Errorf("parse character check: %w", err)
	}
	return truthy(result.HasCharacter), nil
}

// truthy coerces a decoded JSON value the way a loosely typed client would.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
