// README: OpenAI chat-completions client; DeepSeek shares this wire protocol.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// httpClient is shared by all chat-completion providers. Generation is
// slow, so the timeout is generous; context cancellation is still honoured
// via NewRequestWithContext.
var httpClient = &http.Client{Timeout: 120 * time.Second}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAIProvider implements Provider against the OpenAI API.
type OpenAIProvider struct {
	apiKey  string
	model   string
	baseURL string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{apiKey: apiKey, model: model, baseURL: defaultOpenAIBaseURL}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return completeChat(ctx, p.Name(), p.baseURL, p.apiKey, p.model, prompt)
}

// completeChat runs one chat-completion round trip and returns the first
// choice's content. Every failure mode maps to *ProviderError.
func completeChat(ctx context.Context, provider, baseURL, apiKey, model, prompt string) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	})
	if err != nil {
		return "", fmt.Errorf("%s: marshal request: %w", provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", provider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: provider, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: "read response: " + err.Error()}
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", &ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: "invalid response body"}
	}
	if cr.Error != nil {
		return "", &ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: cr.Error.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: string(body)}
	}
	if len(cr.Choices) == 0 {
		return "", &ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: "API returned no completions"}
	}
	return cr.Choices[0].Message.Content, nil
}
