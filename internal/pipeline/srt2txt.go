package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/transcriptflow/transcriptflow/internal/subtitle"
)

func (p *implPipeline) extractOptions() subtitle.ExtractOptions {
	return subtitle.ExtractOptions{
		TextOnly: p.cfg.Processing.SRTToText.ExtractTextOnly,
		Combine:  p.cfg.Processing.SRTToText.CombineSentences,
	}
}

// convertSRTToText discovers SRT files under inputPath and extracts each
// one to plain text. When a directory holds no SRT files but does hold
// videos, the missing upstream stage runs first: every video is
// transcribed and the resulting SRT files are converted.
func (p *implPipeline) convertSRTToText(ctx context.Context, inputPath, outputDir string) ([]string, error) {
	p.logger.Info(ctx, "Converting SRT to TXT")

	var srtFiles []string

	switch {
	case isDir(inputPath):
		var err error
		srtFiles, err = findByExt(inputPath, ".srt")
		if err != nil {
			return nil, err
		}

		if len(srtFiles) == 0 {
			videos, err := findVideos(inputPath)
			if err != nil {
				return nil, err
			}
			if len(videos) == 0 {
				p.logger.Info(ctx, "No SRT or video files found in %s", inputPath)
				return nil, nil
			}

			p.logger.Info(ctx, "No SRT files found, transcribing %d video files first", len(videos))
			for i, video := range videos {
				p.logger.Info(ctx, "[%d/%d] Transcribing: %s", i+1, len(videos), filepath.Base(video))
				srtPath, err := p.transcribeVideo(ctx, video)
				if err != nil {
					return nil, err
				}
				srtFiles = append(srtFiles, srtPath)
			}
		}

	case strings.EqualFold(filepath.Ext(inputPath), ".srt"):
		srtFiles = []string{inputPath}

	default:
		p.logger.Error(ctx, "Input is not an SRT file or a directory containing SRT files: %s", inputPath)
		return nil, nil
	}

	var txtFiles []string
	for i, srtPath := range srtFiles {
		txtPath, err := outputPath(inputPath, srtPath, outputDir, ".txt")
		if err != nil {
			return nil, err
		}

		p.logger.Debug(ctx, "[%d/%d] Converting: %s -> %s", i+1, len(srtFiles), srtPath, txtPath)
		if err := p.extractOne(ctx, srtPath, txtPath); err != nil {
			continue
		}
		txtFiles = append(txtFiles, txtPath)
	}

	p.logger.Info(ctx, "Converted %d SRT files", len(txtFiles))
	return txtFiles, nil
}

// extractOne converts a single SRT file. Unreadable inputs are logged
// and skipped rather than aborting the run.
func (p *implPipeline) extractOne(ctx context.Context, srtPath, txtPath string) error {
	if err := subtitle.ConvertFile(srtPath, txtPath, p.extractOptions()); err != nil {
		p.logger.Error(ctx, "Failed to convert %s: %v", srtPath, err)
		return err
	}
	return nil
}

// transcribeVideo runs the speech model over one video and writes the
// SRT next to it.
func (p *implPipeline) transcribeVideo(ctx context.Context, videoPath string) (string, error) {
	segments, err := p.transcriber.Transcribe(ctx, videoPath)
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", videoPath, err)
	}

	srtPath := replaceExt(videoPath, ".srt")
	if err := subtitle.WriteFile(srtPath, segments); err != nil {
		return "", err
	}

	p.logger.Info(ctx, "Wrote subtitles: %s (%d segments)", srtPath, len(segments))
	return srtPath, nil
}
