package summarizer

import "context"

// Provider turns a transcript into a structured Markdown summary using a
// hosted model. The response is returned trimmed but otherwise verbatim;
// its Markdown structure is not validated.
type Provider interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
