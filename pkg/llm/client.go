// Package llm drafts request descriptions through a configured model
// provider.
package llm

import (
	"context"
	"fmt"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// Client is implemented by model backends that can answer a chat.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	CheckConnection(ctx context.Context) error
}

// NewClient builds the provider named in config. An empty provider
// defaults to Ollama.
func NewClient(config *storage.Config) (Client, error) {
	switch config.Provider {
	case "", "ollama":
		return NewOllamaClient(config.OllamaURL, config.DefaultModel, config.OllamaAPIKey), nil
	case "gemini":
		return NewGeminiClient(config.GeminiAPIKey, config.DefaultModel), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (supported: ollama, gemini)", config.Provider)
	}
}
