package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/transcriptflow/transcriptflow/internal/config"
	"github.com/transcriptflow/transcriptflow/internal/logger"
)

// geminiProvider calls the Gemini API, rotating through the configured
// API keys when one hits its quota.
type geminiProvider struct {
	cfg        config.GeminiConfig
	currentKey int
	logger     logger.Logger
}

func newGeminiProvider(cfg config.GeminiConfig, log logger.Logger) Provider {
	return &geminiProvider{
		cfg:    cfg,
		logger: log,
	}
}

func (p *geminiProvider) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt := userPrompt(transcript)

	attempts := len(p.cfg.APIKeys)
	var lastErr error

	for range attempts {
		key := p.cfg.APIKeys[p.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, p.cfg.Model, genai.Text(prompt), &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		})
		if err != nil {
			if isQuotaError(err) {
				p.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", p.currentKey+1)
				p.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			return strings.TrimSpace(text.String()), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (p *geminiProvider) rotateKey() {
	p.currentKey = (p.currentKey + 1) % len(p.cfg.APIKeys)
}
