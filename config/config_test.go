package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LLM_PROVIDER", "MAX_CONTEXT_TOKENS", "STRICT_TOOL_ARGS", "HTTP_ADDR", "AGENDA_CRON", "FOCUS_MINUTES"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	if cfg.LLMProvider != "gemini" {
		t.Errorf("expected gemini, got %q", cfg.LLMProvider)
	}
	if cfg.MaxContextTokens != 0 {
		t.Errorf("expected full replay by default, got %d", cfg.MaxContextTokens)
	}
	if !cfg.StrictToolArgs {
		t.Error("expected strict tool args by default")
	}
	if cfg.HTTPAddr != ":8080" || cfg.AgendaCron != "0 8 * * *" || cfg.FocusMinutes != 25 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("MAX_CONTEXT_TOKENS", "8000")
	t.Setenv("STRICT_TOOL_ARGS", "false")
	t.Setenv("FOCUS_MINUTES", "nope")

	cfg := Load()
	if cfg.MaxContextTokens != 8000 {
		t.Errorf("expected 8000, got %d", cfg.MaxContextTokens)
	}
	if cfg.StrictToolArgs {
		t.Error("expected strict tool args disabled")
	}
	if cfg.FocusMinutes != 25 {
		t.Errorf("expected fallback for bad number, got %d", cfg.FocusMinutes)
	}

	p := cfg.Provider()
	if p.Provider != "anthropic" || p.APIKey != "sk-test" {
		t.Errorf("unexpected provider config %+v", p)
	}
}

func TestProvider_KeyPerProvider(t *testing.T) {
	cfg := &Config{GeminiKey: "g", AnthropicKey: "a", OpenAIKey: "o"}
	tests := map[string]string{"gemini": "g", "anthropic": "a", "openai": "o", "ollama": ""}
	for provider, want := range tests {
		cfg.LLMProvider = provider
		if got := cfg.Provider().APIKey; got != want {
			t.Errorf("%s: expected key %q, got %q", provider, want, got)
		}
	}
}
