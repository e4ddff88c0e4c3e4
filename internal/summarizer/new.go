package summarizer

import (
	"fmt"

	"github.com/transcriptflow/transcriptflow/internal/config"
	"github.com/transcriptflow/transcriptflow/internal/logger"
)

// New creates the Provider selected by summarizer.provider.
func New(cfg *config.Config, log logger.Logger) (Provider, error) {
	switch cfg.Summarizer.Provider {
	case "openai":
		return newOpenAIProvider(cfg.OpenAI, log), nil
	case "gemini":
		return newGeminiProvider(cfg.Gemini, log), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider: %q", cfg.Summarizer.Provider)
	}
}
