package llm

import "testing"

func TestConfigApplyEnv(t *testing.T) {
	t.Setenv("DEBUGME_LLM_PROVIDER", "openai")
	t.Setenv("DEBUGME_OPENAI_API_KEY", "sk-test")
	t.Setenv("DEBUGME_OPENAI_MODEL", "gpt-4o")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Provider != "openai" {
		t.Fatalf("expected provider openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("unexpected api key: %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected model: %q", cfg.OpenAI.Model)
	}
}

func TestConfigDiscoverPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg := DefaultConfig()
	if !cfg.Discover() {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini to win discovery, got %q", cfg.Provider)
	}
}

func TestConfigDiscoverNothing(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg := DefaultConfig()
	if cfg.Discover() {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing anthropic key")
	}

	cfg.Anthropic.APIKey = "ak-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock should not require a key: %v", err)
	}

	cfg.Provider = "llamacpp"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
