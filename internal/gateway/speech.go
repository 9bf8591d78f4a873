package gateway

import (
	"context"
	"encoding/base64"

	"google.golang.org/genai"
)

type SpeechRequest struct {
	Text  string
	Voice Voice
	// StylePrompt is passed verbatim as the system instruction.
	StylePrompt string
	APIKey      string
}

// SynthesizeSpeech returns the narration as base64 audio, or "" when the
// model produced no audio part.
func (g *Gateway) SynthesizeSpeech(ctx context.Context, req SpeechRequest) (string, error) {
	const op = "synthesize speech"

	client, err := g.client(ctx, req.APIKey)
	if err != nil {
		return "", fail(ctx, op, err)
	}
	if req.Text == "" {
		return "", fail(ctx, op, ErrEmptyText)
	}
	if !req.Voice.Valid() {
		return "", fail(ctx, op, ErrUnsupportedVoice)
	}

	resp, err := client.GenerateContent(ctx, g.speechModel, genai.Text(req.Text), speechConfig(req))
	if err != nil {
		return "", fail(ctx, op, err)
	}

	parts := firstCandidateParts(resp)
	if len(parts) == 0 || parts[0] == nil || parts[0].InlineData == nil {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString(parts[0].InlineData.Data), nil
}

func speechConfig(req SpeechRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: req.Voice.String(),
				},
			},
		},
	}
	if req.StylePrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.StylePrompt}},
		}
	}
	return config
}
