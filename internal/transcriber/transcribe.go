package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/transcriptflow/transcriptflow/internal/subtitle"
)

// whisperOutput is the shape of whisper.cpp's JSON output file. Offsets
// are milliseconds from the start of the audio.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe extracts 16kHz mono audio from mediaPath with ffmpeg, runs
// whisper.cpp over it, and returns the timed segments in order. Temp
// files are removed before returning.
func (e *implEngine) Transcribe(ctx context.Context, mediaPath string) ([]subtitle.Segment, error) {
	if _, err := e.executor.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found on PATH: %w", err)
	}
	if _, err := e.executor.LookPath(e.cfg.BinaryPath); err != nil {
		return nil, fmt.Errorf("whisper binary %q not found: %w", e.cfg.BinaryPath, err)
	}

	audioPath, err := e.extractAudio(ctx, mediaPath)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}
	defer e.removeTemp(ctx, audioPath)

	e.logger.Info(ctx, "Transcribing with %d threads: %s", e.cfg.Threads, mediaPath)

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	args := []string{
		"-m", e.cfg.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", e.cfg.Language,
		"-t", strconv.Itoa(e.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := e.executor.Execute(ctx, e.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	defer e.removeTemp(ctx, jsonPath)

	segments, err := parseWhisperJSON(jsonPath)
	if err != nil {
		return nil, err
	}

	e.logger.Info(ctx, "Transcription completed: %d segments", len(segments))
	return segments, nil
}

// extractAudio converts the media file to 16kHz mono WAV, the input
// format whisper.cpp expects.
func (e *implEngine) extractAudio(ctx context.Context, mediaPath string) (string, error) {
	if err := os.MkdirAll(e.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	audioPath := filepath.Join(e.tempDir, base+".wav")

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	e.logger.Debug(ctx, "Extracting audio: %s -> %s", mediaPath, audioPath)
	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg: %w", err)
	}

	return audioPath, nil
}

func parseWhisperJSON(path string) ([]subtitle.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	var segments []subtitle.Segment
	for _, t := range out.Transcription {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		segments = append(segments, subtitle.Segment{
			Index: len(segments) + 1,
			Start: float64(t.Offsets.From) / 1000,
			End:   float64(t.Offsets.To) / 1000,
			Text:  text,
		})
	}

	return segments, nil
}

func (e *implEngine) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		e.logger.Debug(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}
