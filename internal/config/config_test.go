package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Summarizer.Provider = "claude" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.UI.ColorTheme = "neon" },
			wantErr: true,
		},
		{
			name:    "gemini without api keys",
			mutate:  func(c *Config) { c.Summarizer.Provider = "gemini" },
			wantErr: true,
		},
		{
			name: "gemini with api keys",
			mutate: func(c *Config) {
				c.Summarizer.Provider = "gemini"
				c.Gemini.APIKeys = []string{"key-1"}
			},
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.OpenAI.Temperature = 3.5 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFillsZeroValues(t *testing.T) {
	cfg := Default()
	cfg.OpenAI.Timeout = 0
	cfg.Whisper.Threads = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.OpenAI.Timeout != 60 {
		t.Errorf("Timeout = %d, want 60", cfg.OpenAI.Timeout)
	}
	if cfg.Whisper.Threads != 4 {
		t.Errorf("Threads = %d, want 4", cfg.Whisper.Threads)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
openai:
  model: "llama-3.1-8b"
  temperature: 0.2

processing:
  srt2txt:
    combine_sentences: false

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Overridden values.
	if cfg.OpenAI.Model != "llama-3.1-8b" {
		t.Errorf("Model = %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature != 0.2 {
		t.Errorf("Temperature = %v", cfg.OpenAI.Temperature)
	}
	if cfg.Processing.SRTToText.CombineSentences {
		t.Error("CombineSentences should be overridden to false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}

	// Untouched keys keep their defaults, including siblings of
	// overridden keys.
	if cfg.OpenAI.BaseURL != "http://localhost:1234/v1" {
		t.Errorf("BaseURL = %q, want default", cfg.OpenAI.BaseURL)
	}
	if !cfg.Processing.SRTToText.ExtractTextOnly {
		t.Error("ExtractTextOnly should keep its default")
	}
	if !cfg.Processing.MDToDocx.AddTableOfContents {
		t.Error("AddTableOfContents should keep its default")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Summarizer.Provider != "openai" {
		t.Errorf("Provider = %q, want default", cfg.Summarizer.Provider)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.OpenAI.Model = "custom-model"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.OpenAI.Model != "custom-model" {
		t.Errorf("Model = %q after round trip", loaded.OpenAI.Model)
	}
}
