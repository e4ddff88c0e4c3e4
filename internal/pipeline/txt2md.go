package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// errSkip marks a per-file problem (unreadable input) that should not
// abort the run.
var errSkip = errors.New("skip file")

// summarizeText sends each transcript to the summarizer and writes the
// Markdown result. A remote failure aborts the run; unreadable inputs
// are logged and skipped.
func (p *implPipeline) summarizeText(ctx context.Context, txtFiles []string, inputPath, outputDir string) ([]string, error) {
	p.logger.Info(ctx, "Summarizing TXT to MD")

	if len(txtFiles) == 0 {
		var err error
		txtFiles, err = p.discoverText(inputPath)
		if err != nil {
			return nil, err
		}
	}

	if len(txtFiles) == 0 {
		p.logger.Warn(ctx, "No TXT files found to summarize")
		return nil, nil
	}

	var mdFiles []string
	for i, txtPath := range txtFiles {
		p.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(txtFiles), filepath.Base(txtPath))

		mdPath, err := outputPath(inputPath, txtPath, outputDir, ".md")
		if err != nil {
			return nil, err
		}
		if err := p.summarizeOne(ctx, txtPath, mdPath); err != nil {
			if errors.Is(err, errSkip) {
				continue
			}
			return nil, err
		}
		mdFiles = append(mdFiles, mdPath)
	}

	p.logger.Info(ctx, "Summarized %d files", len(mdFiles))
	return mdFiles, nil
}

func (p *implPipeline) summarizeOne(ctx context.Context, txtPath, mdPath string) error {
	text, err := os.ReadFile(txtPath)
	if err != nil {
		p.logger.Error(ctx, "Failed to read %s: %v", txtPath, err)
		return fmt.Errorf("%w: %v", errSkip, err)
	}

	summary, err := p.summarizer.Summarize(ctx, string(text))
	if err != nil {
		return fmt.Errorf("summarize %s: %w", txtPath, err)
	}

	if err := os.WriteFile(mdPath, []byte(summary+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", mdPath, err)
	}

	p.logger.Debug(ctx, "Wrote summary: %s", mdPath)
	return nil
}

func (p *implPipeline) discoverText(inputPath string) ([]string, error) {
	if isDir(inputPath) {
		return findByExt(inputPath, ".txt")
	}
	if strings.EqualFold(filepath.Ext(inputPath), ".txt") {
		return []string{inputPath}, nil
	}
	return nil, nil
}
