package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath      = "config.yaml"
	defaultSpeechModel     = "gemini-2.5-flash-preview-tts"
	defaultStoryboardModel = "gemini-2.5-flash"
	defaultImageModel      = "gemini-2.5-flash-image"
	defaultCheckModel      = "gemini-2.5-flash"
	defaultVoice           = "Kore"
	defaultRenderOutput    = "./output"
	defaultConcurrency     = 3
	defaultS3Region        = "us-west-2"
)

type Config struct {
	// GeminiAPIKey is the process-wide fallback credential, read once at startup.
	GeminiAPIKey       string `yaml:"-"`
	GeminiAPIKeySecret string `yaml:"-"`

	Gemini GeminiConfig `yaml:"gemini"`
	Speech SpeechConfig `yaml:"speech"`
	Render RenderConfig `yaml:"render"`
	GCS    GCSConfig    `yaml:"gcs"`
	S3     S3Config     `yaml:"s3"`
}

type GeminiConfig struct {
	SpeechModel     string `yaml:"speech_model"`
	StoryboardModel string `yaml:"storyboard_model"`
	ImageModel      string `yaml:"image_model"`
	CheckModel      string `yaml:"check_model"`
}

type SpeechConfig struct {
	Voice       string `yaml:"voice"`
	StylePrompt string `yaml:"style_prompt"`
}

type RenderConfig struct {
	// Output is a local directory, gs://bucket/prefix or s3://bucket/prefix.
	Output             string `yaml:"output"`
	Concurrency        int    `yaml:"concurrency"`
	SkipCharacterCheck bool   `yaml:"skip_character_check"`
	StyleReference     string `yaml:"style_reference"`
}

type GCSConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
}

type S3Config struct {
	Region string `yaml:"region"`
}

func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, defaultConfigPath)
}

func LoadFrom(ctx context.Context, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GeminiAPIKey:       firstEnv("GEMINI_API_KEY", "API_KEY"),
		GeminiAPIKeySecret: os.Getenv("GEMINI_API_KEY_SECRET"),
	}

	if err := loadYAMLConfig(cfg, path); err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" && cfg.GeminiAPIKeySecret != "" {
		key, err := accessSecret(ctx, cfg.GeminiAPIKeySecret)
		if err != nil {
			return nil, fmt.Errorf("load gemini api key from secret manager: %w", err)
		}
		cfg.GeminiAPIKey = key
	}

	applyDefaults(cfg)

	return cfg, nil
}

func loadYAMLConfig(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No config file found, using defaults", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyGeminiDefaults(cfg)
	applySpeechDefaults(cfg)
	applyRenderDefaults(cfg)
	applyS3Defaults(cfg)
}

func applyGeminiDefaults(cfg *Config) {
	if cfg.Gemini.SpeechModel == "" {
		cfg.Gemini.SpeechModel = defaultSpeechModel
	}
	if cfg.Gemini.StoryboardModel == "" {
		cfg.Gemini.StoryboardModel = defaultStoryboardModel
	}
	if cfg.Gemini.ImageModel == "" {
		cfg.Gemini.ImageModel = defaultImageModel
	}
	if cfg.Gemini.CheckModel == "" {
		cfg.Gemini.CheckModel = defaultCheckModel
	}
}

func applySpeechDefaults(cfg *Config) {
	if cfg.Speech.Voice == "" {
		cfg.Speech.Voice = defaultVoice
	}
}

func applyRenderDefaults(cfg *Config) {
	if cfg.Render.Output == "" {
		cfg.Render.Output = defaultRenderOutput
	}
	if cfg.Render.Concurrency <= 0 {
		cfg.Render.Concurrency = defaultConcurrency
	}
}

func applyS3Defaults(cfg *Config) {
	if cfg.S3.Region == "" {
		cfg.S3.Region = getEnvOrDefault("AWS_REGION", defaultS3Region)
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
