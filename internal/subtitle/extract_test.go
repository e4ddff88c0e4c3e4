package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:02,500
Hello <i>world</i>,
this is   line one.

2
00:00:02,500 --> 00:00:05,000
Second block.

3
00:00:05,000 --> 00:00:07,000
Trailing block without separator`

func TestFragments(t *testing.T) {
	fragments := Fragments(sampleSRT)

	want := []string{
		"Hello world, this is line one.",
		"Second block.",
		"Trailing block without separator",
	}

	if len(fragments) != len(want) {
		t.Fatalf("got %d fragments, want %d: %v", len(fragments), len(want), fragments)
	}
	for i := range want {
		if fragments[i] != want[i] {
			t.Errorf("fragment %d = %q, want %q", i, fragments[i], want[i])
		}
	}
}

func TestFragmentsCases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
		{
			name:    "no blocks",
			content: "just some text without structure",
			want:    nil,
		},
		{
			name: "extra blank lines between blocks",
			content: "1\n00:00:00,000 --> 00:00:01,000\nfirst\n\n\n\n" +
				"2\n00:00:01,000 --> 00:00:02,000\nsecond\n",
			want: []string{"first", "second"},
		},
		{
			name: "out-of-order indices preserved in file order",
			content: "2\n00:00:01,000 --> 00:00:02,000\nsecond\n\n" +
				"1\n00:00:00,000 --> 00:00:01,000\nfirst\n",
			want: []string{"second", "first"},
		},
		{
			name:    "block with empty text is dropped",
			content: "1\n00:00:00,000 --> 00:00:01,000\n\n\n2\n00:00:01,000 --> 00:00:02,000\nkept\n",
			want:    []string{"kept"},
		},
		{
			name:    "tags removed entirely",
			content: "1\n00:00:00,000 --> 00:00:01,000\n<font color=\"red\">styled</font> <b>bold</b>\n",
			want:    []string{"styled bold"},
		},
		{
			name:    "multi-line text joined",
			content: "1\n00:00:00,000 --> 00:00:01,000\nline one\nline two\n",
			want:    []string{"line one line two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fragments(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d fragments %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("fragment %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	content := "1\n00:00:00,000 --> 00:00:01,000\nfirst\n\n2\n00:00:01,000 --> 00:00:02,000\nsecond\n"

	t.Run("combined", func(t *testing.T) {
		got := ExtractText(content, ExtractOptions{TextOnly: true, Combine: true})
		if got != "first second" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("one per line", func(t *testing.T) {
		got := ExtractText(content, ExtractOptions{TextOnly: true})
		if got != "first\nsecond" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("pass-through keeps timestamps", func(t *testing.T) {
		got := ExtractText(content, ExtractOptions{})
		if got != content {
			t.Errorf("got %q, want input unchanged", got)
		}
	})
}

func TestExtractRoundTrip(t *testing.T) {
	// Joining fragments and re-splitting on sentence boundaries must not
	// produce more parts than the original block count.
	fragments := Fragments(sampleSRT)
	joined := strings.Join(fragments, " ")
	parts := strings.Split(joined, ". ")
	if len(parts) > len(fragments) {
		t.Errorf("re-split produced %d parts from %d blocks", len(parts), len(fragments))
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	srtPath := filepath.Join(dir, "in.srt")
	txtPath := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(srtPath, []byte(sampleSRT), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ConvertFile(srtPath, txtPath, ExtractOptions{TextOnly: true, Combine: true}); err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		t.Fatal(err)
	}

	want := "Hello world, this is line one. Second block. Trailing block without separator"
	if string(data) != want {
		t.Errorf("txt content = %q, want %q", string(data), want)
	}
}

func TestConvertFileMissingInput(t *testing.T) {
	err := ConvertFile(filepath.Join(t.TempDir(), "missing.srt"), "out.txt", ExtractOptions{TextOnly: true})
	if err == nil {
		t.Error("ConvertFile() should fail for missing input")
	}
}
