package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient handles communication with the Gemini API
type GeminiClient struct {
	APIKey string
	Model  string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		APIKey: apiKey,
		Model:  model,
	}
}

// Chat sends the conversation to Gemini and returns the response text.
// System messages become the model's system instruction.
func (c *GeminiClient) Chat(ctx context.Context, messages []Message) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{}
	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			config.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case "assistant":
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	resp, err := client.Models.GenerateContent(ctx, c.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini (model: %s) request failed: %w", c.Model, err)
	}

	return resp.Text(), nil
}

// CheckConnection verifies the API key is set and a client can be built
func (c *GeminiClient) CheckConnection(ctx context.Context) error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini requires an API key (set gemini_api_key in config)")
	}

	if _, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
	}); err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return nil
}
