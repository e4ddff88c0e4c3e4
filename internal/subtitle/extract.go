package subtitle

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ExtractOptions controls how SRT content is turned into plain text.
type ExtractOptions struct {
	// TextOnly drops indices and timestamp lines. When false the SRT
	// content is passed through verbatim.
	TextOnly bool
	// Combine joins all fragments with single spaces into continuous
	// prose. When false, one fragment per line.
	Combine bool
}

var (
	// blockHeader matches the index line plus the timestamp-range line
	// that open an SRT block. Text runs from the end of one header to
	// the start of the next header, or to end of input for a trailing
	// block with no terminator.
	blockHeader = regexp.MustCompile(`(?m)^\d+\s*\n\d{2}:\d{2}:\d{2},\d{3}\s*-->\s*\d{2}:\d{2}:\d{2},\d{3}.*\n?`)

	tagRun   = regexp.MustCompile(`<[^>]+>`)
	spaceRun = regexp.MustCompile(`\s+`)
)

// Fragments returns the cleaned text of every block in content, in input
// order. HTML-like tags are removed, whitespace runs collapse to a single
// space, and empty blocks are dropped. Blocks separated by more than one
// blank line are still recognized; out-of-order indices are not re-sorted.
func Fragments(content string) []string {
	headers := blockHeader.FindAllStringIndex(content, -1)

	var fragments []string
	for i, loc := range headers {
		end := len(content)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}

		text := content[loc[1]:end]
		text = tagRun.ReplaceAllString(text, "")
		text = spaceRun.ReplaceAllString(text, " ")
		text = strings.TrimSpace(text)

		if text != "" {
			fragments = append(fragments, text)
		}
	}

	return fragments
}

// ExtractText converts raw SRT content to plain text per opts.
func ExtractText(content string, opts ExtractOptions) string {
	if !opts.TextOnly {
		return content
	}

	fragments := Fragments(content)
	if opts.Combine {
		return strings.Join(fragments, " ")
	}
	return strings.Join(fragments, "\n")
}

// ConvertFile reads the SRT at srtPath and writes the extracted text to
// txtPath.
func ConvertFile(srtPath, txtPath string, opts ExtractOptions) error {
	content, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("read srt: %w", err)
	}

	text := ExtractText(string(content), opts)
	if err := os.WriteFile(txtPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("write txt: %w", err)
	}

	return nil
}
