package pipeline

import (
	"github.com/transcriptflow/transcriptflow/internal/config"
	"github.com/transcriptflow/transcriptflow/internal/converter"
	"github.com/transcriptflow/transcriptflow/internal/logger"
	"github.com/transcriptflow/transcriptflow/internal/summarizer"
	"github.com/transcriptflow/transcriptflow/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	transcriber transcriber.Engine
	summarizer  summarizer.Provider
	converter   converter.Converter
	logger      logger.Logger
}

// New creates a Pipeline wiring the four stages together.
func New(cfg *config.Config, engine transcriber.Engine, provider summarizer.Provider, conv converter.Converter, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		transcriber: engine,
		summarizer:  provider,
		converter:   conv,
		logger:      log,
	}
}
