// Package wav packages raw PCM samples into a RIFF/WAVE container.
//
// The synthesis provider returns bare samples (mono, 16-bit little-endian,
// 24 kHz) with no container. Encode prepends the canonical 44-byte PCM
// header so the result plays anywhere.
package wav

import (
	"encoding/binary"
	"fmt"
)

const (
	// Channels is the channel count declared in the header.
	Channels = 1
	// BitsPerSample is the sample width declared in the header.
	BitsPerSample = 16
	// SampleRate is the frame rate declared in the header.
	SampleRate = 24000

	// HeaderSize is the size of the canonical PCM header: RIFF chunk
	// descriptor (12) + fmt chunk (24) + data chunk header (8).
	HeaderSize = 44

	blockAlign = Channels * BitsPerSample / 8
	byteRate   = SampleRate * blockAlign

	pcmFormat    = 1
	fmtChunkSize = 16
)

// Encode wraps pcm in a WAV container. The data section is the payload
// verbatim; output is byte-identical for identical input.
func Encode(pcm []byte) []byte {
	out := make([]byte, HeaderSize+len(pcm))

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(pcm)+HeaderSize-8))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(out[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(out[22:24], Channels)
	binary.LittleEndian.PutUint32(out[24:28], SampleRate)
	binary.LittleEndian.PutUint32(out[28:32], byteRate)
	binary.LittleEndian.PutUint16(out[32:34], blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], BitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(pcm)))
	copy(out[HeaderSize:], pcm)

	return out
}

// Format describes the fmt chunk of a canonical PCM header.
type Format struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	DataLen       int
}

// Header parses the fixed 44-byte header produced by Encode.
func Header(b []byte) (Format, error) {
	if len(b) < HeaderSize {
		return Format{}, fmt.Errorf("wav: %d bytes is shorter than a header", len(b))
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return Format{}, fmt.Errorf("wav: missing RIFF/WAVE marker")
	}
	if string(b[12:16]) != "fmt " || string(b[36:40]) != "data" {
		return Format{}, fmt.Errorf("wav: unexpected chunk layout")
	}
	return Format{
		Channels:      int(binary.LittleEndian.Uint16(b[22:24])),
		SampleRate:    int(binary.LittleEndian.Uint32(b[24:28])),
		BitsPerSample: int(binary.LittleEndian.Uint16(b[34:36])),
		DataLen:       int(binary.LittleEndian.Uint32(b[40:44])),
	}, nil
}

// Data returns the payload section of a container produced by Encode.
func Data(b []byte) ([]byte, error) {
	f, err := Header(b)
	if err != nil {
		return nil, err
	}
	if len(b) < HeaderSize+f.DataLen {
		return nil, fmt.Errorf("wav: data chunk declares %d bytes, %d present", f.DataLen, len(b)-HeaderSize)
	}
	return b[HeaderSize : HeaderSize+f.DataLen], nil
}
