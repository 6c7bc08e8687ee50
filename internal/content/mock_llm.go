package content

import (
	"context"
	"fmt"
	"strings"
)

// MockReply scripts a single Generate call.
type MockReply struct {
	Text string
	Err  error
}

// MockLLM is a deterministic LLM implementation for testing.
// It returns predictable responses based on prompt content.
type MockLLM struct {
	// Response is the fixed text returned by Generate.
	// If empty, a default response is generated from the prompt.
	Response string

	// Error, if set, is returned by Generate instead of a response.
	Error error

	// Script, when non-empty, overrides Response and Error call by call.
	// Once exhausted the final reply repeats.
	Script []MockReply

	// Calls counts Generate invocations.
	Calls int

	// LastPrompt stores the most recent prompt passed to Generate.
	LastPrompt string
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// NewScriptedLLM creates a mock LLM that replays replies in order,
// repeating the last one once the script runs out.
func NewScriptedLLM(replies ...MockReply) *MockLLM {
	return &MockLLM{Script: replies}
}

// Generate returns the scripted or configured response.
func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt

	if len(m.Script) > 0 {
		step := m.Script[min(m.Calls-1, len(m.Script)-1)]
		if step.Err != nil {
			return "", step.Err
		}
		return step.Text, nil
	}

	if m.Error != nil {
		return "", m.Error
	}

	if m.Response != "" {
		return m.Response, nil
	}

	// Generate a deterministic response based on prompt content
	return generateMockCopy(prompt), nil
}

// generateMockCopy creates predictable copy from the prompt.
func generateMockCopy(prompt string) string {
	// Extract the product name if present
	product := "this product"
	if strings.Contains(prompt, "Product:") {
		parts := strings.Split(prompt, "Product:")
		if len(parts) > 1 {
			lines := strings.Split(parts[1], "\n")
			if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
				product = strings.TrimSpace(lines[0])
			}
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Meet %s, made for people who care about the details. ", product))
	b.WriteString("Every piece is built to earn its place in your day, pairing honest materials with thoughtful design. ")
	b.WriteString("Try it once and it will be hard to go back.")

	return b.String()
}
