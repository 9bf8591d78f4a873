package gateway

import (
	"errors"
	"testing"
)

func TestResolveCredential(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		fallback string
		want     string
		wantErr  error
	}{
		{name: "explicitWins", explicit: "call-key", fallback: "env-key", want: "call-key"},
		{name: "explicitOnly", explicit: "call-key", want: "call-key"},
		{name: "fallbackUsed", fallback: "env-key", want: "env-key"},
		{name: "neither", wantErr: ErrMissingCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveCredential(tt.explicit, tt.fallback)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResolveCredential() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveCredential() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExplicitKeyPreferredOverFallback(t *testing.T) {
	fake := &fakeGenerator{resp: textResponse("[]")}
	g := newTestGateway(fake, "env-key")

	if _, err := g.DecomposeStoryboard(t.Context(), "One sentence.", "call-key"); err != nil {
		t.Fatalf("DecomposeStoryboard() error = %v", err)
	}
	if _, err := g.DecomposeStoryboard(t.Context(), "One sentence.", ""); err != nil {
		t.Fatalf("DecomposeStoryboard() error = %v", err)
	}

	if len(fake.keys) != 2 || fake.keys[0] != "call-key" || fake.keys[1] != "env-key" {
		t.Errorf("client keys = %v, want [call-key env-key]", fake.keys)
	}
}

func TestMissingCredentialPropagates(t *testing.T) {
	fake := &fakeGenerator{resp: textResponse("[]")}
	g := newTestGateway(fake, "")
	ctx := t.Context()

	_, err := g.SynthesizeSpeech(ctx, SpeechRequest{Text: "Hello", Voice: VoiceKore})
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("SynthesizeSpeech() error = %v, want ErrMissingCredential", err)
	}

	_, err = g.DecomposeStoryboard(ctx, "Hello.", "")
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("DecomposeStoryboard() error = %v, want ErrMissingCredential", err)
	}

	_, err = g.GenerateSceneImage(ctx, SceneImageRequest{Prompt: "a red fox in snow"})
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("GenerateSceneImage() error = %v, want ErrMissingCredential", err)
	}

	if fake.factories != 0 {
		t.Errorf("client constructed %d times, want 0", fake.factories)
	}
}
