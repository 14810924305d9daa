// Package artifact persists generated audio and returns a retrievable
// reference to it.
package artifact

import "context"

// Store defines the interface for artifact backends.
type Store interface {
	// Save persists data under name with the given media type and
	// returns a reference to the stored artifact (a path or URL).
	Save(ctx context.Context, name string, data []byte, mediaType string) (string, error)
}
