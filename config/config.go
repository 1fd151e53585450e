package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/chris/zendo/internal/llm"
)

type Config struct {
	LLMProvider      string // gemini, anthropic, openai, ollama
	GeminiKey        string
	AnthropicKey     string // API key (X-Api-Key header)
	AnthropicToken   string // OAuth token (Authorization: Bearer header)
	OpenAIKey        string
	LLMModel         string
	OllamaBaseURL    string
	MaxContextTokens int  // 0 replays the whole conversation
	StrictToolArgs   bool // validate tool arguments before applying them
	HTTPAddr         string
	DiscordToken     string
	DiscordWebhook   string
	DiscordUserID    string // DM recipient for the agenda digest
	AgendaCron       string
	FocusMinutes     int
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		LLMProvider:      envOr("LLM_PROVIDER", "gemini"),
		GeminiKey:        os.Getenv("GEMINI_API_KEY"),
		AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicToken:   os.Getenv("ANTHROPIC_AUTH_TOKEN"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		LLMModel:         os.Getenv("LLM_MODEL"),
		OllamaBaseURL:    envOr("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		MaxContextTokens: intOr("MAX_CONTEXT_TOKENS", 0),
		StrictToolArgs:   boolOr("STRICT_TOOL_ARGS", true),
		HTTPAddr:         envOr("HTTP_ADDR", ":8080"),
		DiscordToken:     os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordWebhook:   os.Getenv("DISCORD_WEBHOOK_URL"),
		DiscordUserID:    os.Getenv("DISCORD_USER_ID"),
		AgendaCron:       envOr("AGENDA_CRON", "0 8 * * *"),
		FocusMinutes:     intOr("FOCUS_MINUTES", 25),
	}
}

// Provider returns the backend settings for the configured provider.
func (c *Config) Provider() llm.ProviderConfig {
	var key string
	switch c.LLMProvider {
	case "gemini":
		key = c.GeminiKey
	case "anthropic":
		key = c.AnthropicKey
	case "openai":
		key = c.OpenAIKey
	}
	return llm.ProviderConfig{
		Provider:  c.LLMProvider,
		APIKey:    key,
		AuthToken: c.AnthropicToken,
		Model:     c.LLMModel,
		BaseURL:   c.OllamaBaseURL,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func boolOr(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: %s=%q is not a boolean, using %v", key, v, fallback)
		return fallback
	}
	return b
}
