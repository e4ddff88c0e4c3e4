package pipeline

import (
	"context"
	"path/filepath"
	"strings"
)

// convertMarkdown turns each Markdown summary into a Word document. A
// missing converter tool skips the whole stage after logging install
// guidance; a failed conversion of one file logs and continues with the
// next.
func (p *implPipeline) convertMarkdown(ctx context.Context, mdFiles []string, inputPath, outputDir string) error {
	p.logger.Info(ctx, "Converting MD to DOCX")

	if len(mdFiles) == 0 {
		var err error
		mdFiles, err = p.discoverMarkdown(inputPath)
		if err != nil {
			return err
		}
	}

	if len(mdFiles) == 0 {
		p.logger.Warn(ctx, "No MD files found to convert to DOCX")
		return nil
	}

	if !p.converter.Available(ctx) {
		p.logger.Warn(ctx, "Skipping DOCX conversion")
		return nil
	}

	converted := 0
	for i, mdPath := range mdFiles {
		docxPath, err := outputPath(inputPath, mdPath, outputDir, ".docx")
		if err != nil {
			return err
		}

		p.logger.Info(ctx, "[%d/%d] Converting: %s -> %s", i+1, len(mdFiles), filepath.Base(mdPath), docxPath)
		if err := p.converter.Convert(ctx, mdPath, docxPath); err != nil {
			p.logger.Error(ctx, "Failed to convert %s: %v", mdPath, err)
			continue
		}
		converted++
	}

	p.logger.Info(ctx, "Converted %d of %d MD files", converted, len(mdFiles))
	return nil
}

func (p *implPipeline) discoverMarkdown(inputPath string) ([]string, error) {
	if isDir(inputPath) {
		return findByExt(inputPath, ".md")
	}
	if strings.EqualFold(filepath.Ext(inputPath), ".md") {
		return []string{inputPath}, nil
	}
	return nil, nil
}
