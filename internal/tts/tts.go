package tts

import "context"

// Audio format of the synthesis payload: raw PCM samples, no container.
const (
	// SampleRate of the synthesized audio in Hz.
	SampleRate = 24000
	// Channels in the synthesized audio.
	Channels = 1
	// SampleWidth in bytes (16-bit little-endian samples).
	SampleWidth = 2
)

// Client defines the interface for speech-synthesis providers.
type Client interface {
	// Synthesize converts a two-speaker transcript to audio and returns
	// the raw PCM payload. A nil payload with a nil error means the
	// provider produced no audio for this transcript.
	Synthesize(ctx context.Context, script string) ([]byte, error)
}
