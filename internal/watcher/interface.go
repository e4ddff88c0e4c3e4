package watcher

import "context"

// Watcher monitors a directory and hands newly created video files to a
// handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one detected video file.
type Handler func(ctx context.Context, videoPath string) error
