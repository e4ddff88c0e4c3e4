package converter

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

// Built-in Markdown to DOCX rendering, used when pandoc is unavailable.
// Covers the subset of Markdown the summarizer produces: headings,
// bullets, numbered lists, quotes, bold runs, and horizontal rules.

const (
	bodyFont = "Calibri"
	bodySize = 11
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	reQuote    = regexp.MustCompile(`^>\s*(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

func (c *implConverter) convertNative(mdPath, docxPath string) error {
	data, err := os.ReadFile(mdPath)
	if err != nil {
		return fmt.Errorf("read markdown: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			p := doc.AddParagraph("")
			addRun(p, stripInline(m[2]), true, headingSize(len(m[1])))

		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			addRichText(doc.AddParagraph(""), "• "+m[1])

		case reNumbered.MatchString(trimmed):
			addRichText(doc.AddParagraph(""), trimmed)

		case reQuote.MatchString(trimmed):
			m := reQuote.FindStringSubmatch(trimmed)
			addRichText(doc.AddParagraph(""), m[1])

		default:
			addRichText(doc.AddParagraph(""), trimmed)
		}
	}

	if err := doc.SaveTo(docxPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12
	default:
		return bodySize
	}
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(bodyFont).Size(size)
	if bold {
		run.Bold(true)
	}
}

// addRichText splits out **bold** spans and emits alternating plain and
// bold runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			addRun(p, stripInline(part), false, bodySize)
		}
		if i < len(matches) {
			addRun(p, stripInline(matches[i][1]), true, bodySize)
		}
	}
}

func stripInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
