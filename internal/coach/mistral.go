package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fitflow/internal/middleware"
	"fitflow/internal/observability"
)

const defaultMistralURL = "https://api.mistral.ai/v1/chat/completions"

// MistralClient implements LLM against the Mistral chat completion API.
type MistralClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewMistralClient returns an LLM backed by Mistral. Model defaults to
// mistral-small-latest when empty.
func NewMistralClient(apiKey, model string) *MistralClient {
	if model == "" {
		model = "mistral-small-latest"
	}
	return &MistralClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultMistralURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type mistralRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type mistralResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (c *MistralClient) Chat(ctx context.Context, history []Message, userMessage string) (string, error) {
	ctx, span := observability.TraceExternalCall(ctx, "mistral", "chat")
	defer span.End()

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: SystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: userMessage})

	payload, err := json.Marshal(mistralRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: 1024,
	})
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		middleware.ExternalCallFailures.WithLabelValues("mistral").Inc()
		span.RecordError(err)
		return "", fmt.Errorf("call chat provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		middleware.ExternalCallFailures.WithLabelValues("mistral").Inc()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("chat provider returned %d: %s", resp.StatusCode, snippet)
	}

	var parsed mistralResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat provider returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
