// README: Env-driven configuration; loaded once at startup and passed by value.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported AI provider identifiers for the AI_PROVIDER setting.
const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderGemini   = "gemini"
)

type ProviderConfig struct {
	APIKey string
	Model  string
}

type Config struct {
	// AIProvider selects which backend generates packing lists.
	AIProvider string

	OpenAI   ProviderConfig
	DeepSeek ProviderConfig
	Gemini   ProviderConfig

	// OpenWeatherKey enables real forecasts; without it every lookup
	// degrades to the seasonal estimate.
	OpenWeatherKey string

	DefaultLuggageVolume float64
	PackingCubeVolume    float64

	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from the environment, with a .env file as
// fallback. Real environment variables take precedence over .env entries.
func Load() Config {
	// Missing .env is fine; the system environment is authoritative anyway.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("AI_PROVIDER", ProviderDeepSeek)
	v.SetDefault("OPENAI_MODEL", "gpt-4-turbo-preview")
	v.SetDefault("DEEPSEEK_MODEL", "deepseek-chat")
	v.SetDefault("GEMINI_MODEL", "gemini-pro")
	v.SetDefault("DEFAULT_LUGGAGE_VOLUME", 39.0)
	v.SetDefault("PACKING_CUBE_VOLUME", 9.0)
	v.SetDefault("PACKMIN_HTTP_ADDR", ":8080")
	v.SetDefault("PACKMIN_LOG_LEVEL", "info")
	v.SetDefault("PACKMIN_LOG_FORMAT", "console")

	var cfg Config
	cfg.AIProvider = strings.ToLower(v.GetString("AI_PROVIDER"))
	switch cfg.AIProvider {
	case ProviderOpenAI, ProviderDeepSeek, ProviderGemini:
	default:
		cfg.AIProvider = ProviderDeepSeek
	}

	cfg.OpenAI = ProviderConfig{APIKey: v.GetString("OPENAI_API_KEY"), Model: v.GetString("OPENAI_MODEL")}
	cfg.DeepSeek = ProviderConfig{APIKey: v.GetString("DEEPSEEK_API_KEY"), Model: v.GetString("DEEPSEEK_MODEL")}
	cfg.Gemini = ProviderConfig{APIKey: v.GetString("GEMINI_API_KEY"), Model: v.GetString("GEMINI_MODEL")}
	cfg.OpenWeatherKey = v.GetString("OPENWEATHER_API_KEY")
	cfg.DefaultLuggageVolume = v.GetFloat64("DEFAULT_LUGGAGE_VOLUME")
	cfg.PackingCubeVolume = v.GetFloat64("PACKING_CUBE_VOLUME")
	cfg.HTTP.Addr = v.GetString("PACKMIN_HTTP_ADDR")
	cfg.DB.DSN = v.GetString("PACKMIN_DB_DSN")
	cfg.Log.Level = v.GetString("PACKMIN_LOG_LEVEL")
	cfg.Log.Format = v.GetString("PACKMIN_LOG_FORMAT")
	return cfg
}

// Validate reports every missing required setting for the active provider.
// An empty slice means the configuration is usable.
func (c Config) Validate() []string {
	var errs []string

	if c.OpenWeatherKey == "" {
		errs = append(errs, "OPENWEATHER_API_KEY is required")
	}

	byProvider := map[string]ProviderConfig{
		ProviderOpenAI:   c.OpenAI,
		ProviderDeepSeek: c.DeepSeek,
		ProviderGemini:   c.Gemini,
	}
	if pc, ok := byProvider[c.AIProvider]; ok && pc.APIKey == "" {
		errs = append(errs, fmt.Sprintf("%s_API_KEY is required when using the %s provider",
			strings.ToUpper(c.AIProvider), c.AIProvider))
	}

	return errs
}

// Active returns the key/model pair for the selected provider.
func (c Config) Active() ProviderConfig {
	switch c.AIProvider {
	case ProviderOpenAI:
		return c.OpenAI
	case ProviderGemini:
		return c.Gemini
	default:
		return c.DeepSeek
	}
}
