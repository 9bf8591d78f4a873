package gateway

import (
	"errors"
	"strings"
	"testing"
)

const twoSceneJSON = `[
  {"narrativeText": "The hero drew his sword.", "imagePrompt": "Low angle close-up of a knight unsheathing a sword, golden hour rim light, 9:16"},
  {"narrativeText": "He charged into battle.", "imagePrompt": "Wide tracking shot of the same knight in dented silver armor charging, dust and stormy light, 9:16"}
]`

func TestDecomposeStoryboard(t *testing.T) {
	fake := &fakeGenerator{resp: textResponse(twoSceneJSON)}
	g := newTestGateway(fake, "env-key")

	text := "The hero drew his sword. He charged into battle."
	segments, err := g.DecomposeStoryboard(t.Context(), text, "")
	if err != nil {
		t.Fatalf("DecomposeStoryboard() error = %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].NarrativeText != "The hero drew his sword." {
		t.Errorf("segments[0].NarrativeText = %q", segments[0].NarrativeText)
	}
	if segments[1].NarrativeText != "He charged into battle." {
		t.Errorf("segments[1].NarrativeText = %q", segments[1].NarrativeText)
	}
	for i, s := range segments {
		if s.ImagePrompt == "" {
			t.Errorf("segments[%d].ImagePrompt is empty", i)
		}
	}

	call := fake.calls[0]
	if call.model != DefaultStoryboardModel {
		t.Errorf("model = %q, want %q", call.model, DefaultStoryboardModel)
	}
	if call.config.ResponseMIMEType != "application/json" {
		t.Errorf("ResponseMIMEType = %q", call.config.ResponseMIMEType)
	}
	if call.config.ResponseSchema != storyboardSchema {
		t.Error("ResponseSchema must be the storyboard schema")
	}
	if !strings.Contains(call.contents[0].Parts[0].Text, text) {
		t.Error("request instruction must contain the narration")
	}
}

func TestDecomposeStoryboardCodeFences(t *testing.T) {
	plain, err := parseStoryboard(twoSceneJSON)
	if err != nil {
		t.Fatalf("parseStoryboard(plain) error = %v", err)
	}

	for _, fenced := range []string{
		"```json\n" + twoSceneJSON + "\n```",
		"```\n" + twoSceneJSON + "\n```",
		"  ```json" + twoSceneJSON + "```  ",
	} {
		got, err := parseStoryboard(fenced)
		if err != nil {
			t.Fatalf("parseStoryboard(%q) error = %v", fenced, err)
		}
		if len(got) != len(plain) {
			t.Fatalf("fenced parse got %d segments, want %d", len(got), len(plain))
		}
		for i := range got {
			if got[i] != plain[i] {
				t.Errorf("segment %d = %+v, want %+v", i, got[i], plain[i])
			}
		}
	}
}

func TestDecomposeStoryboardEmptyResponse(t *testing.T) {
	g := newTestGateway(&fakeGenerator{resp: textResponse("")}, "env-key")

	segments, err := g.DecomposeStoryboard(t.Context(), "Nothing happens.", "")
	if err != nil {
		t.Fatalf("DecomposeStoryboard() error = %v", err)
	}
	if segments == nil || len(segments) != 0 {
		t.Errorf("segments = %v, want empty non-nil slice", segments)
	}
}

func TestDecomposeStoryboardMalformedJSON(t *testing.T) {
	g := newTestGateway(&fakeGenerator{resp: textResponse("```json\nnot json at all\n```")}, "env-key")

	_, err := g.DecomposeStoryboard(t.Context(), "A sentence.", "")
	if err == nil {
		t.Fatal("expected parse error to propagate")
	}
	if !strings.Contains(err.Error(), "parse storyboard") {
		t.Errorf("error = %v, want parse storyboard failure", err)
	}
}

func TestDecomposeStoryboardRemoteError(t *testing.T) {
	remoteErr := errors.New("deadline exceeded")
	g := newTestGateway(&fakeGenerator{err: remoteErr}, "env-key")

	if _, err := g.DecomposeStoryboard(t.Context(), "A sentence.", ""); !errors.Is(err, remoteErr) {
		t.Errorf("error = %v, want %v", err, remoteErr)
	}
}

func TestDecomposeStoryboardEmptyText(t *testing.T) {
	fake := &fakeGenerator{}
	g := newTestGateway(fake, "env-key")

	if _, err := g.DecomposeStoryboard(t.Context(), "   ", ""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("error = %v, want ErrEmptyText", err)
	}
	if len(fake.calls) != 0 {
		t.Error("no remote call expected for empty text")
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "[]", want: "[]"},
		{in: "```json\n[]\n```", want: "[]"},
		{in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{in: "\n  [1]  \n", want: "[1]"},
	}

	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
