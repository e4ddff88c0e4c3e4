package converter

import (
	"context"
	"fmt"
	"os"
)

// Available checks for pandoc once per run. When pandoc is missing it
// logs installation instructions; if the native fallback is enabled the
// stage can still proceed with the built-in writer.
func (c *implConverter) Available(ctx context.Context) bool {
	if _, err := c.executor.LookPath("pandoc"); err == nil {
		return true
	}

	c.logger.Warn(ctx, "pandoc is not installed")
	c.logger.Info(ctx, "To install pandoc:")
	c.logger.Info(ctx, "  - Debian/Ubuntu: sudo apt install pandoc")
	c.logger.Info(ctx, "  - macOS: brew install pandoc")
	c.logger.Info(ctx, "  - Other: https://pandoc.org/installing.html")

	if c.cfg.NativeFallback {
		c.logger.Info(ctx, "Falling back to the built-in DOCX writer")
		c.usingNative = true
		return true
	}

	return false
}

// Convert renders the Markdown file at mdPath into a Word document at
// docxPath.
func (c *implConverter) Convert(ctx context.Context, mdPath, docxPath string) error {
	if c.usingNative {
		return c.convertNative(mdPath, docxPath)
	}

	args := []string{mdPath, "-o", docxPath}
	if c.cfg.AddTableOfContents {
		args = append(args, "--toc", "--toc-depth=3")
	}
	if c.cfg.AddPageNumbers {
		args = append(args, "--variable=numbersections")
	}
	if c.cfg.TemplateFile != "" {
		if _, err := os.Stat(c.cfg.TemplateFile); err == nil {
			args = append(args, "--reference-doc="+c.cfg.TemplateFile)
		} else {
			c.logger.Warn(ctx, "Template file not found, ignoring: %s", c.cfg.TemplateFile)
		}
	}

	if _, err := c.executor.Execute(ctx, "pandoc", args...); err != nil {
		return fmt.Errorf("pandoc convert: %w", err)
	}

	return nil
}
