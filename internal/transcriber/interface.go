package transcriber

import (
	"context"

	"github.com/transcriptflow/transcriptflow/internal/subtitle"
)

// Engine turns a media file into timed text segments.
type Engine interface {
	Transcribe(ctx context.Context, mediaPath string) ([]subtitle.Segment, error)
}
