// Package podcast chains the pipeline: fetch URL content, rewrite it as a
// two-speaker transcript, synthesize speech, package the audio as WAV and
// store it as an artifact.
package podcast

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/lukasbauer/podcaster/internal/artifact"
	"github.com/lukasbauer/podcaster/internal/eventlog"
	"github.com/lukasbauer/podcaster/internal/fetch"
	"github.com/lukasbauer/podcaster/internal/llm"
	"github.com/lukasbauer/podcaster/internal/tts"
	"github.com/lukasbauer/podcaster/internal/wav"
)

const (
	// Filename under which the finished audio is stored.
	Filename = "podcast.wav"
	// MediaType of the stored artifact.
	MediaType = "audio/wav"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Result is the structured outcome of a pipeline run.
type Result struct {
	Status   string `json:"status"`
	Detail   string `json:"detail"`
	Filename string `json:"filename,omitempty"`
}

// Producer runs the pipeline. All collaborators are injected; Producer
// itself holds no state between runs.
type Producer struct {
	fetcher fetch.Client
	writer  llm.Client
	speaker tts.Client
	store   artifact.Store
	events  *eventlog.Logger
	logger  *log.Logger
}

// New creates a Producer. events may be eventlog.New(nil) when no
// database is configured; logger may be nil to discard logs.
func New(fetcher fetch.Client, writer llm.Client, speaker tts.Client, store artifact.Store, events *eventlog.Logger, logger *log.Logger) *Producer {
	if events == nil {
		events = eventlog.New(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Producer{
		fetcher: fetcher,
		writer:  writer,
		speaker: speaker,
		store:   store,
		events:  events,
		logger:  logger,
	}
}

// Produce runs the full pipeline for a free-form request. URLs are pulled
// from the request text; with no URLs the fetcher is never called and the
// caller is asked to supply some.
func (p *Producer) Produce(ctx context.Context, request string) (Result, error) {
	runID := uuid.NewString()
	p.events.LogAsync(runID, eventlog.EventRunStarted, map[string]any{"request_len": len(request)})

	urls := ExtractURLs(request)
	if len(urls) == 0 {
		return Result{
			Status: StatusFailure,
			Detail: "no URLs found; provide one or more URLs to turn into a podcast",
		}, nil
	}

	// Fetch sequentially, in the order given; combined text keeps that order.
	var fragments []string
	for _, u := range urls {
		text, err := p.fetcher.Fetch(ctx, u)
		if err != nil {
			p.events.LogAsync(runID, eventlog.EventRunFailed, map[string]any{"stage": "fetch", "url": u})
			return Result{}, fmt.Errorf("fetch %s: %w", u, err)
		}
		p.logger.Printf("[%s] fetched %s (%d bytes)", runID, u, len(text))
		fragments = append(fragments, text)
	}
	p.events.LogAsync(runID, eventlog.EventFetchCompleted, map[string]any{"urls": len(urls)})
	source := strings.Join(fragments, "\n\n")

	script, err := p.writer.WriteScript(ctx, source)
	if err != nil {
		p.events.LogAsync(runID, eventlog.EventRunFailed, map[string]any{"stage": "script"})
		return Result{}, fmt.Errorf("write script: %w", err)
	}
	p.logger.Printf("[%s] script generated (%d speaker lines)", runID, CountSpeakerLines(script))
	p.events.LogAsync(runID, eventlog.EventScriptGenerated, map[string]any{"script_len": len(script)})

	return p.produceAudio(ctx, runID, script)
}

// ProduceAudio synthesizes, packages and stores audio for a transcript.
// The only distinguished failure is synthesis producing no payload; that
// comes back as a failure Result, not an error, and the store is not
// touched.
func (p *Producer) ProduceAudio(ctx context.Context, script string) (Result, error) {
	return p.produceAudio(ctx, uuid.NewString(), script)
}

func (p *Producer) produceAudio(ctx context.Context, runID, script string) (Result, error) {
	pcm, err := p.speaker.Synthesize(ctx, script)
	if err != nil {
		p.events.LogAsync(runID, eventlog.EventRunFailed, map[string]any{"stage": "synthesis"})
		return Result{}, fmt.Errorf("synthesize: %w", err)
	}
	if len(pcm) == 0 {
		p.events.LogAsync(runID, eventlog.EventSynthesisFailed, nil)
		return Result{
			Status: StatusFailure,
			Detail: "failed to generate podcast audio",
		}, nil
	}
	p.logger.Printf("[%s] audio length: %d", runID, len(pcm))

	container := wav.Encode(pcm)

	ref, err := p.store.Save(ctx, Filename, container, MediaType)
	if err != nil {
		p.events.LogAsync(runID, eventlog.EventRunFailed, map[string]any{"stage": "store"})
		return Result{}, fmt.Errorf("store artifact: %w", err)
	}
	p.logger.Printf("[%s] stored %s at %s", runID, Filename, ref)
	p.events.LogAsync(runID, eventlog.EventAudioStored, map[string]any{"filename": Filename, "ref": ref})

	return Result{
		Status:   StatusSuccess,
		Detail:   "Audio generated successfully and stored in artifacts.",
		Filename: Filename,
	}, nil
}
