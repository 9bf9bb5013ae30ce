package grading

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGrader grades answers via the OpenAI chat completions API (or
// any OpenAI-compatible endpoint). Alternate provider, selected with
// GRADER_PROVIDER=openai.
type OpenAIGrader struct {
	client    *openai.Client
	model     string
	maxTokens int
}

var _ Grader = (*OpenAIGrader)(nil)

func NewOpenAIGrader(apiKey, model string, maxTokens int) (*OpenAIGrader, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	return &OpenAIGrader{
		client:    openai.NewClient(apiKey),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (g *OpenAIGrader) Grade(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: g.maxTokens,
		Temperature:         0,
	})
	if err != nil {
		return "", &ProviderError{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: "openai", Err: fmt.Errorf("empty completion")}
	}
	return resp.Choices[0].Message.Content, nil
}
