package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const geminiAPIBaseURL = "https://generativelanguage.googleapis.com"

// speechPreamble frames the transcript for the speech model.
const speechPreamble = "Have two people speak in a bright, crisp tone.\n"

// GeminiClient implements the Client interface using Gemini's speech
// generation API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	voice1     string
	voice2     string
	httpClient *http.Client
}

// GeminiConfig holds configuration for the Gemini speech client.
type GeminiConfig struct {
	APIKey     string
	Model      string       // e.g., "gemini-2.5-flash-preview-tts"
	Voice1     string       // Prebuilt voice for "Speaker 1"
	Voice2     string       // Prebuilt voice for "Speaker 2"
	BaseURL    string       // Override for tests; defaults to the public API
	HTTPClient *http.Client // Shared client; defaults to a plain client
}

// NewGeminiClient creates a new Gemini speech-synthesis client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash-preview-tts"
	}
	voice1 := cfg.Voice1
	if voice1 == "" {
		voice1 = "Puck"
	}
	voice2 := cfg.Voice2
	if voice2 == "" {
		voice2 = "Zephyr"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = geminiAPIBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    baseURL,
		voice1:     voice1,
		voice2:     voice2,
		httpClient: httpClient,
	}
}

// speechRequest is the generateContent request body for audio output.
type speechRequest struct {
	Contents         []speechContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type speechContent struct {
	Parts []textPart `json:"parts"`
}

type textPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities"`
	SpeechConfig       speechConfig `json:"speechConfig"`
}

type speechConfig struct {
	MultiSpeakerVoiceConfig multiSpeakerVoiceConfig `json:"multiSpeakerVoiceConfig"`
}

type multiSpeakerVoiceConfig struct {
	SpeakerVoiceConfigs []speakerVoiceConfig `json:"speakerVoiceConfigs"`
}

type speakerVoiceConfig struct {
	Speaker     string      `json:"speaker"`
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

// speechResponse is the subset of the response we read. Any level may be
// missing when the model produced no audio.
type speechResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Synthesize converts a transcript to raw PCM audio. Speaker labels
// "Speaker 1" and "Speaker 2" are bound to the configured voices.
func (c *GeminiClient) Synthesize(ctx context.Context, script string) ([]byte, error) {
	req := speechRequest{
		Contents: []speechContent{
			{Parts: []textPart{{Text: speechPreamble + script}}},
		},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: speechConfig{
				MultiSpeakerVoiceConfig: multiSpeakerVoiceConfig{
					SpeakerVoiceConfigs: []speakerVoiceConfig{
						{Speaker: "Speaker 1", VoiceConfig: voiceConfig{PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: c.voice1}}},
						{Speaker: "Speaker 2", VoiceConfig: voiceConfig{PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: c.voice2}}},
					},
				},
			},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Gemini API error: %s - %s", resp.Status, string(respBody))
	}

	var speechResp speechResponse
	if err := json.NewDecoder(resp.Body).Decode(&speechResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	encoded := extractInlineAudio(speechResp)
	if encoded == "" {
		return nil, nil
	}

	pcm, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio payload: %w", err)
	}
	return pcm, nil
}

// extractInlineAudio returns the first candidate's first inline audio
// payload, or "" when any level of the response is absent.
func extractInlineAudio(resp speechResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	inline := content.Parts[0].InlineData
	if inline == nil {
		return ""
	}
	return inline.Data
}
