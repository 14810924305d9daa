package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lukasbauer/podcaster/internal/artifact"
	"github.com/lukasbauer/podcaster/internal/eventlog"
	"github.com/lukasbauer/podcaster/internal/fetch"
	"github.com/lukasbauer/podcaster/internal/llm"
	"github.com/lukasbauer/podcaster/internal/podcast"
	"github.com/lukasbauer/podcaster/internal/tts"
)

type App struct {
	cfg        Config
	logger     *log.Logger
	db         *pgxpool.Pool
	httpClient *http.Client // Shared HTTP client with connection pooling for fetch/Gemini calls
	producer   *podcast.Producer
}

func New(cfg Config, logger *log.Logger) (*App, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	// Run-event database is optional; without it the event log no-ops.
	var db *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		db, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	// Shared HTTP client with connection pooling.
	// Keeps TCP connections alive across the fetch and Gemini calls of a run.
	httpClient := &http.Client{
		Timeout: 120 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	store, err := newArtifactStore(cfg)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	fetcher := fetch.NewHTTPClient(httpClient, cfg.FetchTimeout)
	writer := llm.NewGeminiClient(llm.GeminiConfig{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.ScriptModel,
		BaseURL:    cfg.GeminiBaseURL,
		HTTPClient: httpClient,
	})
	speaker := tts.NewGeminiClient(tts.GeminiConfig{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.TTSModel,
		Voice1:     cfg.VoiceSpeaker1,
		Voice2:     cfg.VoiceSpeaker2,
		BaseURL:    cfg.GeminiBaseURL,
		HTTPClient: httpClient,
	})

	producer := podcast.New(fetcher, writer, speaker, store, eventlog.New(db), logger)

	return &App{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		httpClient: httpClient,
		producer:   producer,
	}, nil
}

func newArtifactStore(cfg Config) (artifact.Store, error) {
	switch cfg.ArtifactBackend {
	case "", "file":
		return artifact.NewFileStore(cfg.ArtifactDir), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3_BUCKET is required for the s3 artifact backend")
		}
		sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.S3Region)})
		if err != nil {
			return nil, fmt.Errorf("failed to create aws session: %w", err)
		}
		return artifact.NewS3Store(s3.New(sess), cfg.S3Bucket), nil
	default:
		return nil, fmt.Errorf("unknown artifact backend %q", cfg.ArtifactBackend)
	}
}

// Producer returns the wired pipeline.
func (a *App) Producer() *podcast.Producer {
	return a.producer
}

func (a *App) Close() error {
	if a.db != nil {
		a.db.Close()
	}
	return nil
}
