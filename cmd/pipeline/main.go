package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/transcriptflow/transcriptflow/internal/config"
	"github.com/transcriptflow/transcriptflow/internal/converter"
	"github.com/transcriptflow/transcriptflow/internal/logger"
	"github.com/transcriptflow/transcriptflow/internal/pipeline"
	"github.com/transcriptflow/transcriptflow/internal/summarizer"
	"github.com/transcriptflow/transcriptflow/internal/transcriber"
	"github.com/transcriptflow/transcriptflow/internal/watcher"
	"github.com/transcriptflow/transcriptflow/pkg/executor"
)

// stepsFlag collects -steps values, accepting repeats and comma lists.
type stepsFlag []string

func (s *stepsFlag) String() string { return strings.Join(*s, ",") }

func (s *stepsFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

func main() {
	var (
		inputPath  string
		outputDir  string
		configPath string
		watchMode  bool
		steps      stepsFlag
	)

	flag.StringVar(&inputPath, "input", "", "Path to input file or directory (required)")
	flag.StringVar(&inputPath, "i", "", "Path to input file or directory (shorthand)")
	flag.StringVar(&outputDir, "output", "", "Optional output directory for processed files")
	flag.StringVar(&outputDir, "o", "", "Optional output directory (shorthand)")
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.BoolVar(&watchMode, "watch", false, "Watch the input directory and process new videos as they appear")
	flag.Var(&steps, "steps", "Processing steps: srt2txt, txt2md, md2docx, all (repeatable or comma-separated)")
	flag.Var(&steps, "s", "Processing steps (shorthand)")
	flag.Parse()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -input/-i path")
		flag.Usage()
		os.Exit(2)
	}
	if len(steps) == 0 {
		steps = stepsFlag{pipeline.StepAll}
	}
	if err := pipeline.ValidateSteps(steps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewWithOptions(logger.Options{
		Level:     cfg.Logging.Level,
		ToConsole: cfg.Logging.LogToConsole,
		ToFile:    cfg.Logging.LogToFile,
		LogDir:    cfg.Paths.LogDir,
		Theme:     cfg.UI.ColorTheme,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	provider, err := summarizer.New(&cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	engine := transcriber.New(cfg.Whisper, cfg.Paths.TempDir, exec, log)
	conv := converter.New(cfg.Processing.MDToDocx, exec, log)
	pipe := pipeline.New(&cfg, engine, provider, conv, log)

	if watchMode {
		runWatch(ctx, pipe, inputPath, log)
		return
	}

	if err := pipe.Run(ctx, inputPath, steps, outputDir); err != nil {
		log.Error(ctx, "Pipeline failed: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Processing completed successfully")
}

// runWatch blocks processing new videos until interrupted.
func runWatch(ctx context.Context, pipe pipeline.Pipeline, inputDir string, log logger.Logger) {
	w, err := watcher.New(inputDir, pipe.ProcessVideo, log, 1)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		cancel()
		os.Exit(1)
	}

	cancel()
	log.Info(ctx, "Stopped")
}
