// README: Provider contract for packing-list generation backends.
package ai

import "context"

// SystemPrompt is sent with every generation request, framing the model as
// a capsule-wardrobe packing expert.
const SystemPrompt = "You are a travel packing expert who creates efficient, comprehensive packing lists using capsule wardrobe principles."

// Provider defines the contract for interacting with AI models.
// This interface allows swapping providers (DeepSeek, OpenAI, Gemini) by
// configuration without touching the pipeline.
type Provider interface {
	// Generate sends the prompt and returns the first completion's text.
	// Failures are reported as *ProviderError; there are no retries.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name reports the provider identifier used in configuration.
	Name() string
}
