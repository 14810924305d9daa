package llm

import "context"

// Client defines the interface for script-writing providers.
type Client interface {
	// WriteScript turns free-form source text into a two-speaker
	// podcast transcript. Every line of the result is prefixed with
	// "Speaker 1:" or "Speaker 2:".
	WriteScript(ctx context.Context, source string) (string, error)
}
