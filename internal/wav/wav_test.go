package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEncode_HeaderFields(t *testing.T) {
	pcm := bytes.Repeat([]byte{0x00, 0x01}, 100)
	out := Encode(pcm)

	f, err := Header(out)
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	if f.Channels != 1 {
		t.Errorf("channels = %d, want 1", f.Channels)
	}
	if f.BitsPerSample != 16 {
		t.Errorf("bits = %d, want 16", f.BitsPerSample)
	}
	if f.SampleRate != 24000 {
		t.Errorf("rate = %d, want 24000", f.SampleRate)
	}
	if f.DataLen != 200 {
		t.Errorf("data length = %d, want 200", f.DataLen)
	}
}

func TestEncode_RIFFSizes(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}
	out := Encode(pcm)

	if got := string(out[0:4]); got != "RIFF" {
		t.Errorf("marker = %q, want RIFF", got)
	}
	riffSize := binary.LittleEndian.Uint32(out[4:8])
	if want := uint32(len(out) - 8); riffSize != want {
		t.Errorf("RIFF chunk size = %d, want %d", riffSize, want)
	}
	if byteRate != 48000 {
		t.Errorf("byte rate = %d, want 48000", byteRate)
	}
	if blockAlign != 2 {
		t.Errorf("block align = %d, want 2", blockAlign)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		pcm  []byte
	}{
		{"empty", []byte{}},
		{"single frame", []byte{0x34, 0x12}},
		{"spec example", bytes.Repeat([]byte{0x00, 0x01}, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Encode(tt.pcm)
			if len(out) != HeaderSize+len(tt.pcm) {
				t.Fatalf("container length = %d, want %d", len(out), HeaderSize+len(tt.pcm))
			}
			data, err := Data(out)
			if err != nil {
				t.Fatalf("Data: %v", err)
			}
			if !bytes.Equal(data, tt.pcm) {
				t.Errorf("data section differs from payload")
			}
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	pcm := bytes.Repeat([]byte{0xAB, 0xCD}, 500)
	if !bytes.Equal(Encode(pcm), Encode(pcm)) {
		t.Error("two encodings of the same payload differ")
	}
}

func TestHeader_Invalid(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{"too short", []byte("RIFF")},
		{"wrong marker", bytes.Repeat([]byte{0}, HeaderSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Header(tt.b); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
