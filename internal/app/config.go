package app

import (
	"os"
	"time"
)

type Config struct {
	// Gemini API (script writing + speech synthesis)
	GeminiAPIKey  string
	GeminiBaseURL string // Override for local proxies/tests; empty = public API
	ScriptModel   string
	TTSModel      string

	// Voices bound to the two transcript speakers
	VoiceSpeaker1 string
	VoiceSpeaker2 string

	// Artifact storage
	ArtifactBackend string // "file" or "s3"
	ArtifactDir     string // file backend output directory
	S3Bucket        string
	S3Region        string

	// Optional run-event log database
	DatabaseURL string

	// Error monitoring
	SentryDSN string

	FetchTimeout time.Duration
}

func LoadConfigFromEnv() Config {
	fetchTimeout, err := time.ParseDuration(getenv("FETCH_TIMEOUT", "10s"))
	if err != nil {
		fetchTimeout = 10 * time.Second
	}

	return Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"), // Required - no fallback
		GeminiBaseURL: getenv("GEMINI_BASE_URL", ""),
		ScriptModel:   getenv("SCRIPT_MODEL", "gemini-2.5-flash"),
		TTSModel:      getenv("TTS_MODEL", "gemini-2.5-flash-preview-tts"),

		VoiceSpeaker1: getenv("VOICE_SPEAKER_1", "Puck"),
		VoiceSpeaker2: getenv("VOICE_SPEAKER_2", "Zephyr"),

		ArtifactBackend: getenv("ARTIFACT_BACKEND", "file"),
		ArtifactDir:     getenv("ARTIFACT_DIR", "artifacts"),
		S3Bucket:        getenv("S3_BUCKET", ""),
		S3Region:        getenv("S3_REGION", ""),

		DatabaseURL: getenv("DATABASE_URL", ""),

		SentryDSN: getenv("SENTRY_DSN", ""),

		FetchTimeout: fetchTimeout,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
