package config

import "fmt"

type Config struct {
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Paths      PathsConfig      `yaml:"paths"`
	Processing ProcessingConfig `yaml:"processing"`
	Logging    LoggingConfig    `yaml:"logging"`
	UI         UIConfig         `yaml:"ui"`
}

// OpenAIConfig targets any OpenAI-compatible chat-completion endpoint
// (LM Studio, Ollama, the hosted API).
type OpenAIConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	Timeout     int     `yaml:"timeout"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type SummarizerConfig struct {
	Provider string `yaml:"provider"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type PathsConfig struct {
	DefaultOutputDir string `yaml:"default_output_dir"`
	TempDir          string `yaml:"temp_dir"`
	LogDir           string `yaml:"log_dir"`
}

type ProcessingConfig struct {
	SRTToText SRTToTextConfig `yaml:"srt2txt"`
	TextToMD  TextToMDConfig  `yaml:"txt2md"`
	MDToDocx  MDToDocxConfig  `yaml:"md2docx"`
}

type SRTToTextConfig struct {
	ExtractTextOnly  bool `yaml:"extract_text_only"`
	RemoveTimestamps bool `yaml:"remove_timestamps"`
	CombineSentences bool `yaml:"combine_sentences"`
}

type TextToMDConfig struct {
	IncludeTimestamps bool `yaml:"include_timestamps"`
	IncludeSummary    bool `yaml:"include_summary"`
	IncludeKeyPoints  bool `yaml:"include_key_points"`
}

type MDToDocxConfig struct {
	AddTableOfContents bool   `yaml:"add_table_of_contents"`
	AddPageNumbers     bool   `yaml:"add_page_numbers"`
	TemplateFile       string `yaml:"template_file"`
	NativeFallback     bool   `yaml:"native_fallback"`
}

type LoggingConfig struct {
	Level        string `yaml:"level"`
	LogToFile    bool   `yaml:"log_to_file"`
	LogToConsole bool   `yaml:"log_to_console"`
}

type UIConfig struct {
	ColorTheme   string `yaml:"color_theme"`
	ShowProgress bool   `yaml:"show_progress"`
}

// Default returns the built-in configuration. User files are merged over
// this value field by field, so partial overrides keep the rest intact.
func Default() Config {
	return Config{
		OpenAI: OpenAIConfig{
			BaseURL:     "http://localhost:1234/v1",
			APIKey:      "lm-studio",
			Model:       "qwen2.5-7b-instruct-1m",
			Temperature: 0.7,
			MaxTokens:   4000,
			Timeout:     60,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Summarizer: SummarizerConfig{
			Provider: "openai",
		},
		Whisper: WhisperConfig{
			BinaryPath: "whisper-cli",
			ModelPath:  "models/ggml-base.bin",
			Language:   "en",
			Threads:    4,
		},
		Paths: PathsConfig{
			DefaultOutputDir: "output",
			TempDir:          "temp",
			LogDir:           "logs",
		},
		Processing: ProcessingConfig{
			SRTToText: SRTToTextConfig{
				ExtractTextOnly:  true,
				RemoveTimestamps: true,
				CombineSentences: true,
			},
			TextToMD: TextToMDConfig{
				IncludeSummary:   true,
				IncludeKeyPoints: true,
			},
			MDToDocx: MDToDocxConfig{
				AddTableOfContents: true,
				AddPageNumbers:     true,
				NativeFallback:     true,
			},
		},
		Logging: LoggingConfig{
			Level:        "info",
			LogToFile:    true,
			LogToConsole: true,
		},
		UI: UIConfig{
			ColorTheme:   "default",
			ShowProgress: true,
		},
	}
}

var (
	validProviders = map[string]bool{"openai": true, "gemini": true}
	validLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validThemes    = map[string]bool{"default": true, "dark": true, "light": true, "monochrome": true}
)

// Validate checks cross-field consistency and fills zero values that an
// override file may have cleared.
func (c *Config) Validate() error {
	if !validProviders[c.Summarizer.Provider] {
		return fmt.Errorf("summarizer.provider must be one of openai, gemini (got %q)", c.Summarizer.Provider)
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	if !validThemes[c.UI.ColorTheme] {
		return fmt.Errorf("ui.color_theme must be one of default, dark, light, monochrome (got %q)", c.UI.ColorTheme)
	}
	if c.Summarizer.Provider == "gemini" && len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required when summarizer.provider is gemini")
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be within [0, 2]")
	}

	if c.OpenAI.Timeout <= 0 {
		c.OpenAI.Timeout = 60
	}
	if c.Whisper.Threads <= 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Paths.TempDir == "" {
		c.Paths.TempDir = "temp"
	}
	if c.Paths.LogDir == "" {
		c.Paths.LogDir = "logs"
	}

	return nil
}
