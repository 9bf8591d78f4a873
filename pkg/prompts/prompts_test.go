package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if !strings.Contains(p.Storyboard, "one scene per sentence") {
		t.Errorf("Storyboard prompt missing granularity rule: %q", p.Storyboard)
	}
	if !strings.Contains(p.Storyboard, "9:16") {
		t.Error("Storyboard prompt missing vertical format")
	}
	if p.Image.StyleTransfer == "" {
		t.Error("Image.StyleTransfer is empty")
	}
	if !strings.Contains(p.CharacterCheck(), "hasCharacter") {
		t.Errorf("CharacterCheck() = %q, want mention of hasCharacter", p.CharacterCheck())
	}
}

func TestLoadWithoutFile(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(originalWd) }()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	p, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Storyboard != Default().Storyboard {
		t.Error("Load() without prompts.yaml should return defaults")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(originalWd) }()

	promptsContent := `
storyboard: "Split {{.Text}}"
image:
  style_transfer: "Restyle as {{.Prompt}}"
`
	if err := os.WriteFile(filepath.Join(tmpDir, "prompts.yaml"), []byte(promptsContent), 0644); err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	p, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if p.Storyboard != "Split {{.Text}}" {
		t.Errorf("Storyboard = %q, want %q", p.Storyboard, "Split {{.Text}}")
	}
	if p.Character.Check != Default().Character.Check {
		t.Error("Character.Check should keep its default when not overridden")
	}
}

func TestLoadFromMissing(t *testing.T) {
	_, err := LoadFrom("/nonexistent/path.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("storyboard: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestRenderStoryboard(t *testing.T) {
	p := Default()

	got, err := p.RenderStoryboard(StoryboardParams{Text: "The hero drew his sword."})
	if err != nil {
		t.Fatalf("RenderStoryboard() error = %v", err)
	}
	if !strings.Contains(got, "The hero drew his sword.") {
		t.Errorf("rendered prompt missing narration: %q", got)
	}
}

func TestRenderStyleTransfer(t *testing.T) {
	p := Default()

	got, err := p.RenderStyleTransfer(StyleTransferParams{Prompt: "a red fox in snow"})
	if err != nil {
		t.Fatalf("RenderStyleTransfer() error = %v", err)
	}
	if !strings.Contains(got, "New scene: a red fox in snow") {
		t.Errorf("rendered prompt missing scene: %q", got)
	}
}

func TestRenderInvalidTemplate(t *testing.T) {
	p := &Prompts{Storyboard: "{{.Text"}

	if _, err := p.RenderStoryboard(StoryboardParams{Text: "x"}); err == nil {
		t.Error("expected error for invalid template")
	}
}
