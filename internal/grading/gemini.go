package grading

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGrader grades answers via the Google Gemini API. This is the
// default provider.
type GeminiGrader struct {
	client    *genai.Client
	model     string
	maxTokens int
}

var _ Grader = (*GeminiGrader)(nil)

func NewGeminiGrader(ctx context.Context, apiKey, model string, maxTokens int) (*GeminiGrader, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiGrader{client: client, model: model, maxTokens: maxTokens}, nil
}

func (g *GeminiGrader) Grade(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(g.maxTokens),
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", &ProviderError{Provider: "gemini", Err: err}
	}

	text := result.Text()
	if text == "" {
		return "", &ProviderError{Provider: "gemini", Err: fmt.Errorf("empty completion")}
	}
	return text, nil
}
