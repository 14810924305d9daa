// Package fetch retrieves page content for the pipeline.
package fetch

import "context"

// Client defines the interface for content fetchers.
type Client interface {
	// Fetch downloads the URL and returns its content as readable text.
	Fetch(ctx context.Context, url string) (string, error)
}
