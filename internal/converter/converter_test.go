package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/transcriptflow/transcriptflow/internal/config"
	"github.com/transcriptflow/transcriptflow/internal/logger"
)

type stubExecutor struct {
	pandocMissing bool
	failExecute   bool
	calls         [][]string
}

func (s *stubExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.failExecute {
		return "", fmt.Errorf("command '%s' failed", name)
	}
	return "", nil
}

func (s *stubExecutor) LookPath(name string) (string, error) {
	if name == "pandoc" && s.pandocMissing {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

func testConfig() config.MDToDocxConfig {
	return config.MDToDocxConfig{
		AddTableOfContents: true,
		AddPageNumbers:     true,
	}
}

func TestConvertBuildsPandocArgs(t *testing.T) {
	exec := &stubExecutor{}
	c := New(testConfig(), exec, logger.New("error"))

	ctx := context.Background()
	if !c.Available(ctx) {
		t.Fatal("Available() = false with pandoc present")
	}
	if err := c.Convert(ctx, "notes.md", "notes.docx"); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(exec.calls) != 1 {
		t.Fatalf("got %d calls", len(exec.calls))
	}
	got := exec.calls[0]
	want := []string{"pandoc", "notes.md", "-o", "notes.docx", "--toc", "--toc-depth=3", "--variable=numbersections"}
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConvertWithTemplate(t *testing.T) {
	tmpl := filepath.Join(t.TempDir(), "ref.docx")
	if err := os.WriteFile(tmpl, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.TemplateFile = tmpl
	exec := &stubExecutor{}
	c := New(cfg, exec, logger.New("error"))

	if err := c.Convert(context.Background(), "a.md", "a.docx"); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	found := false
	for _, arg := range exec.calls[0] {
		if arg == "--reference-doc="+tmpl {
			found = true
		}
	}
	if !found {
		t.Errorf("reference-doc flag missing from %v", exec.calls[0])
	}
}

func TestConvertMissingTemplateIgnored(t *testing.T) {
	cfg := testConfig()
	cfg.TemplateFile = filepath.Join(t.TempDir(), "absent.docx")
	exec := &stubExecutor{}
	c := New(cfg, exec, logger.New("error"))

	if err := c.Convert(context.Background(), "a.md", "a.docx"); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	for _, arg := range exec.calls[0] {
		if arg == "--reference-doc="+cfg.TemplateFile {
			t.Error("missing template should not be passed to pandoc")
		}
	}
}

func TestAvailableMissingPandocNoFallback(t *testing.T) {
	exec := &stubExecutor{pandocMissing: true}
	c := New(testConfig(), exec, logger.New("error"))

	if c.Available(context.Background()) {
		t.Error("Available() = true without pandoc or fallback")
	}
}

func TestMissingPandocNativeFallback(t *testing.T) {
	cfg := testConfig()
	cfg.NativeFallback = true
	exec := &stubExecutor{pandocMissing: true}
	c := New(cfg, exec, logger.New("error"))

	ctx := context.Background()
	if !c.Available(ctx) {
		t.Fatal("Available() = false with native fallback enabled")
	}

	dir := t.TempDir()
	mdPath := filepath.Join(dir, "summary.md")
	docxPath := filepath.Join(dir, "summary.docx")
	md := "# Title\n\n## Key Points\n\n- **first** point\n- second point\n\n> a quote\n\n---\n\n1. step one\n"
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		t.Fatal(err)
	}

	if err := c.Convert(ctx, mdPath, docxPath); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	info, err := os.Stat(docxPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output docx is empty")
	}
	if len(exec.calls) != 0 {
		t.Errorf("native fallback must not invoke pandoc, got %v", exec.calls)
	}
}

func TestConvertPandocFailure(t *testing.T) {
	exec := &stubExecutor{failExecute: true}
	c := New(testConfig(), exec, logger.New("error"))

	if err := c.Convert(context.Background(), "a.md", "a.docx"); err == nil {
		t.Error("Convert() should surface pandoc failure")
	}
}
