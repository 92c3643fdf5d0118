package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DEBUGME_LLM_PROVIDER", "DEBUGME_ANTHROPIC_API_KEY", "DEBUGME_OPENAI_API_KEY",
		"DEBUGME_GEMINI_API_KEY", "DEBUGME_OPENROUTER_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.Provider != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[llm\nprovider =")
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestResolveLLMFromFile(t *testing.T) {
	clearLLMEnv(t)
	path := writeConfig(t, `
[llm]
provider = "openai"

[llm.openai]
api-key = "sk-file"
model = "gpt-4o"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	resolved := cfg.ResolveLLM()
	if resolved.Provider != "openai" {
		t.Fatalf("expected openai, got %q", resolved.Provider)
	}
	if resolved.OpenAI.APIKey != "sk-file" || resolved.OpenAI.Model != "gpt-4o" {
		t.Fatalf("file values not applied: %+v", resolved.OpenAI)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearLLMEnv(t)
	path := writeConfig(t, `
[llm]
provider = "openai"

[llm.openai]
api-key = "sk-file"
`)
	t.Setenv("DEBUGME_OPENAI_API_KEY", "sk-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	resolved := cfg.ResolveLLM()
	if resolved.OpenAI.APIKey != "sk-env" {
		t.Fatalf("env should win over file, got %q", resolved.OpenAI.APIKey)
	}
}

func TestDiscoveryFallback(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	var empty FileConfig
	resolved := empty.ResolveLLM()
	if resolved.Provider != "gemini" {
		t.Fatalf("expected discovered gemini provider, got %q", resolved.Provider)
	}
	if resolved.Gemini.APIKey != "g-key" {
		t.Fatalf("expected discovered key, got %q", resolved.Gemini.APIKey)
	}
}

func TestDefaultPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	want := filepath.Join("/tmp/xdg-test", "debugme", "config.toml")
	if got := DefaultPath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
