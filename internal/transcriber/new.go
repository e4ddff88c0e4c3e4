package transcriber

import (
	"github.com/transcriptflow/transcriptflow/internal/config"
	"github.com/transcriptflow/transcriptflow/internal/logger"
	"github.com/transcriptflow/transcriptflow/pkg/executor"
)

type implEngine struct {
	cfg      config.WhisperConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Engine backed by the whisper.cpp CLI.
func New(cfg config.WhisperConfig, tempDir string, exec executor.Executor, log logger.Logger) Engine {
	return &implEngine{
		cfg:      cfg,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}
