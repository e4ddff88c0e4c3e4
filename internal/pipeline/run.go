package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func hasStep(steps []string, step string) bool {
	for _, s := range steps {
		if s == StepAll || s == step {
			return true
		}
	}
	return false
}

// Run executes the requested stages in pipeline order. Each stage hands
// its output file list to the next; a stage invoked without one
// rediscovers inputs under inputPath.
func (p *implPipeline) Run(ctx context.Context, inputPath string, steps []string, outputDir string) error {
	if err := ValidateSteps(steps); err != nil {
		return err
	}
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input path: %w", err)
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	p.logger.Info(ctx, "Pipeline started: input=%s steps=%s output=%s",
		inputPath, strings.Join(steps, ","), orDefault(outputDir, "same as input"))

	var txtFiles, mdFiles []string
	var err error

	if hasStep(steps, StepSRTToText) {
		txtFiles, err = p.convertSRTToText(ctx, inputPath, outputDir)
		if err != nil {
			return err
		}
	}

	if hasStep(steps, StepTextToMD) {
		mdFiles, err = p.summarizeText(ctx, txtFiles, inputPath, outputDir)
		if err != nil {
			return err
		}
	}

	if hasStep(steps, StepMDToDocx) {
		if err := p.convertMarkdown(ctx, mdFiles, inputPath, outputDir); err != nil {
			return err
		}
	}

	p.logger.Info(ctx, "Pipeline completed")
	return nil
}

// ProcessVideo runs transcribe, extract, summarize, and convert for one
// video file, writing each result next to it.
func (p *implPipeline) ProcessVideo(ctx context.Context, videoPath string) error {
	srtPath, err := p.transcribeVideo(ctx, videoPath)
	if err != nil {
		return err
	}

	txtPath := replaceExt(srtPath, ".txt")
	if err := p.extractOne(ctx, srtPath, txtPath); err != nil {
		return err
	}

	mdPath := replaceExt(txtPath, ".md")
	if err := p.summarizeOne(ctx, txtPath, mdPath); err != nil {
		return err
	}

	if !p.converter.Available(ctx) {
		return nil
	}
	docxPath := replaceExt(mdPath, ".docx")
	if err := p.converter.Convert(ctx, mdPath, docxPath); err != nil {
		return fmt.Errorf("convert %s: %w", mdPath, err)
	}

	p.logger.Info(ctx, "Processed %s -> %s", videoPath, docxPath)
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
