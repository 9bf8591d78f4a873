package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"storyreel/pkg/prompts"
)

type SceneImageRequest struct {
	Prompt string
	// ReferenceImage is an optional data-URI whose style is carried onto the new scene.
	ReferenceImage string
	APIKey         string
}

// GenerateSceneImage returns the first generated image as a data-URI, or ""
// when the response carries no image part.
func (g *Gateway) GenerateSceneImage(ctx context.Context, req SceneImageRequest) (string, error) {
	const op = "generate scene image"

	client, err := g.client(ctx, req.APIKey)
	if err != nil {
		return "", fail(ctx, op, err)
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fail(ctx, op, ErrEmptyText)
	}

	contents, err := g.sceneContents(req)
	if err != nil {
		return "", fail(ctx, op, err)
	}

	resp, err := client.GenerateContent(ctx, g.imageModel, contents, &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: sceneAspectRatio},
	})
	if err != nil {
		return "", fail(ctx, op, err)
	}

	for _, part := range firstCandidateParts(resp) {
		if part == nil || part.InlineData == nil {
			continue
		}
		return BuildDataURI(part.InlineData.MIMEType, base64.StdEncoding.EncodeToString(part.InlineData.Data)), nil
	}
	return "", nil
}

func (g *Gateway) sceneContents(req SceneImageRequest) ([]*genai.Content, error) {
	if req.ReferenceImage == "" {
		return genai.Text(req.Prompt), nil
	}

	ref := ParseDataURI(req.ReferenceImage)
	data, err := ref.Bytes()
	if err != nil {
		return nil, fmt.Errorf("reference image: %w", err)
	}

	instruction, err := g.prompts.RenderStyleTransfer(prompts.StyleTransferParams{Prompt: req.Prompt})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	return []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, ref.MIMEType),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}, nil
}
