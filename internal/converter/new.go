package converter

import (
	"github.com/transcriptflow/transcriptflow/internal/config"
	"github.com/transcriptflow/transcriptflow/internal/logger"
	"github.com/transcriptflow/transcriptflow/pkg/executor"
)

type implConverter struct {
	cfg      config.MDToDocxConfig
	executor executor.Executor
	logger   logger.Logger

	usingNative bool
}

// New creates a Converter that prefers pandoc and, when enabled, falls
// back to the built-in DOCX writer if pandoc is not installed.
func New(cfg config.MDToDocxConfig, exec executor.Executor, log logger.Logger) Converter {
	return &implConverter{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
