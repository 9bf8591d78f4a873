package prompts

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

//go:embed defaults.yaml
var defaultPrompts []byte

type Prompts struct {
	Storyboard string           `yaml:"storyboard"`
	Image      ImagePrompts     `yaml:"image"`
	Character  CharacterPrompts `yaml:"character"`
}

type ImagePrompts struct {
	StyleTransfer string `yaml:"style_transfer"`
}

type CharacterPrompts struct {
	Check string `yaml:"check"`
}

type StoryboardParams struct {
	Text string
}

type StyleTransferParams struct {
	Prompt string
}

// Default returns the prompts compiled into the binary.
func Default() *Prompts {
	var p Prompts
	if err := yaml.Unmarshal(defaultPrompts, &p); err != nil {
		panic(fmt.Sprintf("prompts: embedded defaults are invalid: %v", err))
	}
	return &p
}

// Load reads prompts.yaml from the working directory on top of the defaults.
// A missing file is not an error.
func Load() (*Prompts, error) {
	p, err := LoadFrom(defaultPromptsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return p, err
}

// LoadFrom reads the prompts file at path. Keys absent from the file keep their default text.
func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	return p, nil
}

func (p *Prompts) RenderStoryboard(params StoryboardParams) (string, error) {
	return render(p.Storyboard, params)
}

func (p *Prompts) RenderStyleTransfer(params StyleTransferParams) (string, error) {
	return render(p.Image.StyleTransfer, params)
}

func (p *Prompts) CharacterCheck() string {
	return p.Character.Check
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
