package pipeline

import (
	"context"
	"fmt"
)

// Step names accepted by the -steps flag.
const (
	StepAll       = "all"
	StepSRTToText = "srt2txt"
	StepTextToMD  = "txt2md"
	StepMDToDocx  = "md2docx"
)

// Pipeline drives the processing stages over an input path.
type Pipeline interface {
	// Run executes the requested steps sequentially. When outputDir is
	// non-empty, results are remapped under it preserving the relative
	// structure of inputPath.
	Run(ctx context.Context, inputPath string, steps []string, outputDir string) error

	// ProcessVideo runs the full chain for a single video file, writing
	// results next to it. Used by watch mode.
	ProcessVideo(ctx context.Context, videoPath string) error
}

// ValidateSteps rejects unknown step names.
func ValidateSteps(steps []string) error {
	for _, s := range steps {
		switch s {
		case StepAll, StepSRTToText, StepTextToMD, StepMDToDocx:
		default:
			return fmt.Errorf("unknown step %q (valid: %s, %s, %s, %s)",
				s, StepSRTToText, StepTextToMD, StepMDToDocx, StepAll)
		}
	}
	return nil
}
