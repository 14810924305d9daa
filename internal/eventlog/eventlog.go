package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventType represents the type of pipeline event
type EventType string

const (
	EventRunStarted      EventType = "run_started"
	EventFetchCompleted  EventType = "fetch_completed"
	EventScriptGenerated EventType = "script_generated"
	EventSynthesisFailed EventType = "synthesis_failed"
	EventAudioStored     EventType = "audio_stored"
	EventRunFailed       EventType = "run_failed"
)

// Logger provides async event logging to the database
type Logger struct {
	db *pgxpool.Pool
}

// New creates a new event logger
func New(db *pgxpool.Pool) *Logger {
	return &Logger{db: db}
}

// Log writes an event to the database synchronously
func (l *Logger) Log(ctx context.Context, runID string, eventType EventType, data map[string]any) error {
	if l.db == nil || runID == "" {
		return nil // Silently skip if no DB or run ID
	}

	dataJSON, err := json.Marshal(data)
	if err != nil {
		dataJSON = []byte("{}")
	}

	_, err = l.db.Exec(ctx, `
		INSERT INTO pipeline_events (run_id, event_type, event_data)
		VALUES ($1, $2, $3)
	`, runID, string(eventType), dataJSON)

	return err
}

// LogAsync logs an event without blocking the caller
func (l *Logger) LogAsync(runID string, eventType EventType, data map[string]any) {
	if l.db == nil || runID == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = l.Log(ctx, runID, eventType, data)
	}()
}
