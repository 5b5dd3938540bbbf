package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("DEEPSEEK_MODEL", "")
	t.Setenv("DEFAULT_LUGGAGE_VOLUME", "")
	t.Setenv("PACKING_CUBE_VOLUME", "")
	t.Setenv("PACKMIN_HTTP_ADDR", "")

	cfg := Load()

	assert.Equal(t, ProviderDeepSeek, cfg.AIProvider)
	assert.Equal(t, "deepseek-chat", cfg.DeepSeek.Model)
	assert.Equal(t, "gpt-4-turbo-preview", cfg.OpenAI.Model)
	assert.Equal(t, 39.0, cfg.DefaultLuggageVolume)
	assert.Equal(t, 9.0, cfg.PackingCubeVolume)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoadUnknownProviderFallsBack(t *testing.T) {
	t.Setenv("AI_PROVIDER", "skynet")
	cfg := Load()
	assert.Equal(t, ProviderDeepSeek, cfg.AIProvider)
}

func TestValidateReportsMissingKeys(t *testing.T) {
	var cfg Config
	cfg.AIProvider = ProviderOpenAI

	errs := cfg.Validate()

	assert.Contains(t, errs, "OPENWEATHER_API_KEY is required")
	assert.Contains(t, errs, "OPENAI_API_KEY is required when using the openai provider")
}

func TestValidateOK(t *testing.T) {
	var cfg Config
	cfg.AIProvider = ProviderGemini
	cfg.Gemini.APIKey = "g-key"
	cfg.OpenWeatherKey = "w-key"

	assert.Empty(t, cfg.Validate())
}

func TestActiveFollowsProvider(t *testing.T) {
	var cfg Config
	cfg.AIProvider = ProviderGemini
	cfg.Gemini = ProviderConfig{APIKey: "g", Model: "gemini-pro"}
	cfg.DeepSeek = ProviderConfig{APIKey: "d", Model: "deepseek-chat"}

	assert.Equal(t, "g", cfg.Active().APIKey)

	cfg.AIProvider = ProviderDeepSeek
	assert.Equal(t, "deepseek-chat", cfg.Active().Model)
}
