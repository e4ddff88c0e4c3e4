package subtitle

import (
	"fmt"
	"os"
	"strings"
)

// Segment is one timed unit of transcribed speech.
type Segment struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// FormatTimestamp renders seconds as an SRT timestamp (HH:MM:SS,mmm).
// Each field is truncated, never rounded, so output is stable across runs.
func FormatTimestamp(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(seconds/60) % 60
	secs := int(seconds) % 60
	millis := int((seconds - float64(int(seconds))) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Render produces SRT content: one block per segment, blocks separated by a
// blank line. Indices are re-numbered from 1 regardless of Segment.Index.
func Render(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			FormatTimestamp(seg.Start),
			FormatTimestamp(seg.End),
			strings.TrimSpace(seg.Text),
		)
	}
	return b.String()
}

// WriteFile writes segments to path in SRT format.
func WriteFile(path string, segments []Segment) error {
	if err := os.WriteFile(path, []byte(Render(segments)), 0644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}
