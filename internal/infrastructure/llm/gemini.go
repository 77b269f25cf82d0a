package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"healthcare-management-system/config"

	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("llm api key not configured")
	ErrEmptyAnswer   = errors.New("llm returned no candidates")
)

// Message is one turn of a conversation. Role is "user" or "model".
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

type geminiClient struct {
	models *genai.Models
	model  string
}

// NewGeminiClient returns a client that answers ErrNotConfigured on every call
// when no api key is set.
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	if cfg.APIKey == "" {
		return unconfiguredClient{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{models: client.Models, model: cfg.Model}, nil
}

func (c *geminiClient) Generate(ctx context.Context, messages []Message) (string, error) {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := genai.RoleUser
		if msg.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyAnswer
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}

type unconfiguredClient struct{}

func (unconfiguredClient) Generate(context.Context, []Message) (string, error) {
	return "", ErrNotConfigured
}
