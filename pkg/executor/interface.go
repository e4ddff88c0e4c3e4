package executor

import "context"

// Executor defines the interface for running external tools (ffmpeg,
// whisper-cli, pandoc).
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
