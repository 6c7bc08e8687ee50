package content

import (
	"context"
	"errors"
)

var (
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid LLM configuration")
)

// LLM defines the interface for the remote text-generation endpoint.
// Implementations must be stateless and thread-safe.
type LLM interface {
	// Generate produces text from a prompt using the configured model.
	// Returns the generated text or an error if generation fails.
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMConfig holds common configuration options for inference providers.
type LLMConfig struct {
	// Model specifies the model identifier
	Model string

	// Temperature controls randomness (0.0 = deterministic, 2.0 = very random)
	Temperature float32

	// MaxTokens limits the response length (0 = use provider default)
	MaxTokens int

	// APIKey is the authentication key for the provider
	APIKey string

	// BaseURL points at an OpenAI-compatible endpoint. Empty means the
	// provider default.
	BaseURL string
}

// DefaultLLMConfig returns sensible defaults for marketing copy generation.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:       "mistralai/Mistral-7B-Instruct-v0.1",
		Temperature: 0.7,
		MaxTokens:   300,
		BaseURL:     "https://router.huggingface.co/v1",
	}
}
