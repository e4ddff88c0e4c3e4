package converter

import "context"

// Converter turns a Markdown file into a Word document.
type Converter interface {
	// Available reports whether the converter can run at all. When it
	// returns false the reason has already been logged with install
	// guidance.
	Available(ctx context.Context) bool
	Convert(ctx context.Context, mdPath, docxPath string) error
}
