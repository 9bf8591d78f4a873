package gateway

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

type generateCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type fakeGenerator struct {
	mu        sync.Mutex
	resp      *genai.GenerateContentResponse
	err       error
	calls     []generateCall
	factories int
	keys      []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, generateCall{model: model, contents: contents, config: config})
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeGenerator) factory(_ context.Context, apiKey string) (ContentGenerator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.factories++
	f.keys = append(f.keys, apiKey)
	return f, nil
}

func newTestGateway(fake *fakeGenerator, fallback string) *Gateway {
	return New(Options{
		FallbackAPIKey: fallback,
		NewClient:      fake.factory,
	})
}

func textResponse(text string) *genai.GenerateContentResponse {
	return partsResponse(&genai.Part{Text: text})
}

func partsResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: genai.RoleModel, Parts: parts}},
		},
	}
}

func inlinePart(data []byte, mimeType string) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{Data: data, MIMEType: mimeType}}
}
