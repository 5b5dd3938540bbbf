package ai

import "context"

const defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"

// DeepSeekProvider implements Provider against the DeepSeek API, which
// speaks the OpenAI chat-completions protocol.
type DeepSeekProvider struct {
	apiKey  string
	model   string
	baseURL string
}

func NewDeepSeekProvider(apiKey, model string) *DeepSeekProvider {
	return &DeepSeekProvider{apiKey: apiKey, model: model, baseURL: defaultDeepSeekBaseURL}
}

func (p *DeepSeekProvider) Name() string { return "deepseek" }

func (p *DeepSeekProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return completeChat(ctx, p.Name(), p.baseURL, p.apiKey, p.model, prompt)
}
