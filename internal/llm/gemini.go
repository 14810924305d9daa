package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const geminiAPIBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient implements the Client interface using Google's Gemini API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// GeminiConfig holds configuration for the Gemini script writer.
type GeminiConfig struct {
	APIKey     string
	Model      string       // e.g., "gemini-2.5-flash"
	BaseURL    string       // Override for tests; defaults to the public API
	HTTPClient *http.Client // Shared client; defaults to a plain client
}

// NewGeminiClient creates a new Gemini script-writing client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
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
		httpClient: httpClient,
	}
}

// generateRequest is the generateContent request body.
type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the generateContent response we read.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// WriteScript turns source text into a two-speaker podcast transcript.
func (c *GeminiClient) WriteScript(ctx context.Context, source string) (string, error) {
	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: WriterSystemPrompt}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: source}}},
		},
	}

	var resp generateResponse
	if err := c.generate(ctx, req, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no script in response")
	}

	script := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if script == "" {
		return "", fmt.Errorf("empty script in response")
	}
	return script, nil
}

// generate posts a generateContent request for the configured model.
func (c *GeminiClient) generate(ctx context.Context, reqBody generateRequest, out *generateResponse) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Gemini API error: %s - %s", resp.Status, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
