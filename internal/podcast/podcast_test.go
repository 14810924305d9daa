package podcast

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/lukasbauer/podcaster/internal/wav"
)

type stubFetcher struct {
	calls []string
	texts map[string]string
	err   error
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	s.calls = append(s.calls, url)
	if s.err != nil {
		return "", s.err
	}
	return s.texts[url], nil
}

type stubWriter struct {
	gotSource string
	script    string
	err       error
}

func (s *stubWriter) WriteScript(_ context.Context, source string) (string, error) {
	s.gotSource = source
	return s.script, s.err
}

type stubSpeaker struct {
	gotScript string
	pcm       []byte
	err       error
}

func (s *stubSpeaker) Synthesize(_ context.Context, script string) ([]byte, error) {
	s.gotScript = script
	return s.pcm, s.err
}

type storeCall struct {
	name      string
	data      []byte
	mediaType string
}

type stubStore struct {
	calls []storeCall
	err   error
}

func (s *stubStore) Save(_ context.Context, name string, data []byte, mediaType string) (string, error) {
	s.calls = append(s.calls, storeCall{name: name, data: data, mediaType: mediaType})
	if s.err != nil {
		return "", s.err
	}
	return "artifacts/" + name, nil
}

func TestProduce_ZeroURLs(t *testing.T) {
	fetcher := &stubFetcher{}
	p := New(fetcher, &stubWriter{}, &stubSpeaker{}, &stubStore{}, nil, nil)

	res, err := p.Produce(context.Background(), "make me a podcast please")
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if res.Status != StatusFailure {
		t.Errorf("status = %q, want failure", res.Status)
	}
	if len(fetcher.calls) != 0 {
		t.Errorf("fetcher called %d times, want 0", len(fetcher.calls))
	}
}

func TestProduce_FetchOrderAndConcatenation(t *testing.T) {
	fetcher := &stubFetcher{texts: map[string]string{
		"https://a.example/one": "first page",
		"https://b.example/two": "second page",
		"https://c.example/3":   "third page",
	}}
	writer := &stubWriter{script: "Speaker 1: Hello\nSpeaker 2: Hi there"}
	speaker := &stubSpeaker{pcm: []byte{1, 2, 3, 4}}
	store := &stubStore{}
	p := New(fetcher, writer, speaker, store, nil, nil)

	req := "turn https://a.example/one, https://b.example/two and https://c.example/3 into a podcast"
	res, err := p.Produce(context.Background(), req)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("status = %q, want success", res.Status)
	}

	wantCalls := []string{"https://a.example/one", "https://b.example/two", "https://c.example/3"}
	if len(fetcher.calls) != len(wantCalls) {
		t.Fatalf("fetch calls = %v, want %v", fetcher.calls, wantCalls)
	}
	for i, u := range wantCalls {
		if fetcher.calls[i] != u {
			t.Errorf("fetch call %d = %q, want %q", i, fetcher.calls[i], u)
		}
	}

	if writer.gotSource != "first page\n\nsecond page\n\nthird page" {
		t.Errorf("combined source = %q, order not preserved", writer.gotSource)
	}
	if speaker.gotScript != writer.script {
		t.Errorf("speaker got %q, want the generated script", speaker.gotScript)
	}
}

func TestProduce_FetchErrorPropagates(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	store := &stubStore{}
	p := New(fetcher, &stubWriter{}, &stubSpeaker{}, store, nil, nil)

	_, err := p.Produce(context.Background(), "https://a.example/one")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(store.calls) != 0 {
		t.Errorf("store called %d times, want 0", len(store.calls))
	}
}

func TestProduce_WriterErrorPropagates(t *testing.T) {
	fetcher := &stubFetcher{texts: map[string]string{"https://a.example": "text"}}
	writer := &stubWriter{err: errors.New("quota exceeded")}
	p := New(fetcher, writer, &stubSpeaker{}, &stubStore{}, nil, nil)

	if _, err := p.Produce(context.Background(), "https://a.example"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestProduceAudio_NoPayload(t *testing.T) {
	store := &stubStore{}
	p := New(&stubFetcher{}, &stubWriter{}, &stubSpeaker{pcm: nil}, store, nil, nil)

	res, err := p.ProduceAudio(context.Background(), "Speaker 1: Hello")
	if err != nil {
		t.Fatalf("ProduceAudio: %v", err)
	}
	if res.Status != StatusFailure {
		t.Errorf("status = %q, want failure", res.Status)
	}
	if res.Detail != "failed to generate podcast audio" {
		t.Errorf("detail = %q", res.Detail)
	}
	if res.Filename != "" {
		t.Errorf("filename = %q, want empty", res.Filename)
	}
	if len(store.calls) != 0 {
		t.Errorf("store called %d times, want 0", len(store.calls))
	}
}

func TestProduceAudio_Success(t *testing.T) {
	pcm := bytes.Repeat([]byte{0x00, 0x01}, 100)
	store := &stubStore{}
	p := New(&stubFetcher{}, &stubWriter{}, &stubSpeaker{pcm: pcm}, store, nil, nil)

	res, err := p.ProduceAudio(context.Background(), "Speaker 1: Hello\nSpeaker 2: Hi there")
	if err != nil {
		t.Fatalf("ProduceAudio: %v", err)
	}

	if res.Status != StatusSuccess {
		t.Errorf("status = %q, want success", res.Status)
	}
	if res.Detail != "Audio generated successfully and stored in artifacts." {
		t.Errorf("detail = %q", res.Detail)
	}
	if res.Filename != "podcast.wav" {
		t.Errorf("filename = %q, want podcast.wav", res.Filename)
	}

	if len(store.calls) != 1 {
		t.Fatalf("store called %d times, want 1", len(store.calls))
	}
	call := store.calls[0]
	if call.name != "podcast.wav" {
		t.Errorf("stored name = %q, want podcast.wav", call.name)
	}
	if call.mediaType != "audio/wav" {
		t.Errorf("media type = %q, want audio/wav", call.mediaType)
	}

	f, err := wav.Header(call.data)
	if err != nil {
		t.Fatalf("stored data is not a WAV container: %v", err)
	}
	if f.Channels != 1 || f.BitsPerSample != 16 || f.SampleRate != 24000 {
		t.Errorf("format = %+v, want 1ch/16bit/24000Hz", f)
	}
	data, err := wav.Data(call.data)
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if !bytes.Equal(data, pcm) {
		t.Error("data section differs from synthesized PCM")
	}
}

func TestProduceAudio_Idempotent(t *testing.T) {
	pcm := bytes.Repeat([]byte{0xFE, 0xCA}, 64)
	store := &stubStore{}
	p := New(&stubFetcher{}, &stubWriter{}, &stubSpeaker{pcm: pcm}, store, nil, nil)

	const script = "Speaker 1: Hello\nSpeaker 2: Hi there"
	for i := 0; i < 2; i++ {
		if _, err := p.ProduceAudio(context.Background(), script); err != nil {
			t.Fatalf("ProduceAudio run %d: %v", i, err)
		}
	}

	if len(store.calls) != 2 {
		t.Fatalf("store called %d times, want 2", len(store.calls))
	}
	if !bytes.Equal(store.calls[0].data, store.calls[1].data) {
		t.Error("two runs over the same transcript produced different containers")
	}
}

func TestProduceAudio_SynthesizeErrorPropagates(t *testing.T) {
	store := &stubStore{}
	p := New(&stubFetcher{}, &stubWriter{}, &stubSpeaker{err: errors.New("timeout")}, store, nil, nil)

	if _, err := p.ProduceAudio(context.Background(), "Speaker 1: Hello"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(store.calls) != 0 {
		t.Errorf("store called %d times, want 0", len(store.calls))
	}
}

func TestProduceAudio_StoreErrorPropagates(t *testing.T) {
	store := &stubStore{err: errors.New("bucket gone")}
	p := New(&stubFetcher{}, &stubWriter{}, &stubSpeaker{pcm: []byte{1, 2}}, store, nil, nil)

	if _, err := p.ProduceAudio(context.Background(), "Speaker 1: Hello"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
