package ai

import (
	"context"
	"testing"

	"packmin/internal/config"
)

func TestNewProviderSelection(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
	}{
		{config.ProviderOpenAI, "openai"},
		{config.ProviderDeepSeek, "deepseek"},
		{"", "deepseek"}, // unknown values fall back to the default
	}

	for _, tt := range tests {
		t.Run(tt.provider+"->"+tt.wantName, func(t *testing.T) {
			var cfg config.Config
			cfg.AIProvider = tt.provider
			cfg.OpenAI = config.ProviderConfig{APIKey: "k", Model: "m"}
			cfg.DeepSeek = config.ProviderConfig{APIKey: "k", Model: "m"}

			p, err := NewProvider(context.Background(), cfg)
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestProviderErrorFormat(t *testing.T) {
	withStatus := &ProviderError{Provider: "deepseek", StatusCode: 429, Message: "rate limited"}
	if got := withStatus.Error(); got != "deepseek: rate limited (status 429)" {
		t.Errorf("Error() = %q", got)
	}

	noStatus := &ProviderError{Provider: "gemini", Message: "dial timeout"}
	if got := noStatus.Error(); got != "gemini: dial timeout" {
		t.Errorf("Error() = %q", got)
	}
}
