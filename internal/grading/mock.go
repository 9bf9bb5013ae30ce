package grading

import (
	"context"
	"fmt"
)

// MockResponse is one canned completion (or error) for MockGrader.
type MockResponse struct {
	Text string
	Err  error
}

// MockGrader returns canned completions in order and records every
// prompt it receives. Test-only.
type MockGrader struct {
	queue []MockResponse
	// Prompts holds every prompt passed to Grade, in call order.
	Prompts []string
}

var _ Grader = (*MockGrader)(nil)

func NewMockGrader(responses ...MockResponse) *MockGrader {
	return &MockGrader{queue: responses}
}

func (m *MockGrader) Grade(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if len(m.queue) == 0 {
		return "", &ProviderError{Provider: "mock", Err: fmt.Errorf("response queue empty")}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	if next.Err != nil {
		return "", next.Err
	}
	return next.Text, nil
}

func (m *MockGrader) CallCount() int { return len(m.Prompts) }
