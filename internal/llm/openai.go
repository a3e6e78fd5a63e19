package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// openAITransport speaks the OpenAI-compatible chat-completions protocol
// used by OpenRouter and Groq.
type openAITransport struct {
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (t *openAITransport) complete(ctx context.Context, cfg ProviderConfig, apiKey, system, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: generationTemperature,
		MaxTokens:   maxOutputTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &RequestError{Provider: cfg.Name, Message: "failed to encode request", Cause: err}
	}

	url := cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &RequestError{Provider: cfg.Name, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	for k, v := range cfg.ExtraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", &RequestError{Provider: cfg.Name, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{Provider: cfg.Name, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &RequestError{
			Provider:   cfg.Name,
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 200),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &RequestError{Provider: cfg.Name, Message: "failed to decode response", Cause: err}
	}
	if parsed.Error != nil {
		return "", &RequestError{Provider: cfg.Name, Message: parsed.Error.Message}
	}
	if len(parsed.Choices) == 0 {
		return "", &RequestError{Provider: cfg.Name, Message: "no choices in response"}
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
