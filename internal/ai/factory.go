package ai

import (
	"context"

	"packmin/internal/config"
)

// NewProvider returns the provider selected by cfg.AIProvider. DeepSeek is
// the default, matching config.Load.
func NewProvider(ctx context.Context, cfg config.Config) (Provider, error) {
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model), nil
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	default:
		return NewDeepSeekProvider(cfg.DeepSeek.APIKey, cfg.DeepSeek.Model), nil
	}
}
