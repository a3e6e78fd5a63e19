package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiTransport reaches Google Gemini through its SDK. A client is
// created per attempt so that credential updates take effect immediately.
type geminiTransport struct{}

func (t *geminiTransport) complete(ctx context.Context, cfg ProviderConfig, apiKey, system, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", &RequestError{Provider: cfg.Name, Message: "failed to create Gemini client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(generationTemperature)
	model.SetMaxOutputTokens(maxOutputTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &RequestError{Provider: cfg.Name, Message: "failed to generate content", Cause: err}
	}

	return extractGeminiText(cfg, resp)
}

// extractGeminiText pulls the text parts out of a Gemini response.
func extractGeminiText(cfg ProviderConfig, resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &RequestError{Provider: cfg.Name, Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &RequestError{Provider: cfg.Name, Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &RequestError{Provider: cfg.Name, Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
