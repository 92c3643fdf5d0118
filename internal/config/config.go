// Package config loads the TOML configuration file and resolves the
// effective LLM settings: file values first, then DEBUGME_* environment
// overrides, then API key discovery as a last resort.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/debugme/internal/llm"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	DB  DBConfig  `toml:"db"`
	LLM LLMConfig `toml:"llm"`
}

// DBConfig maps database settings.
type DBConfig struct {
	Path *string `toml:"path"`
}

// LLMConfig maps LLM provider settings. Pointers distinguish "unset"
// from explicit zero values.
type LLMConfig struct {
	Provider *string `toml:"provider"`

	Anthropic  ProviderConfig `toml:"anthropic"`
	OpenAI     ProviderConfig `toml:"openai"`
	Gemini     ProviderConfig `toml:"gemini"`
	OpenRouter ProviderConfig `toml:"openrouter"`
}

// ProviderConfig holds the per-provider settings.
type ProviderConfig struct {
	APIKey  *string `toml:"api-key"`
	Model   *string `toml:"model"`
	BaseURL *string `toml:"base-url"`
}

// Load reads a TOML config from the given path. A missing file is not
// an error; it simply yields an empty config.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ResolveLLM builds the effective llm.Config: defaults, overlaid with
// the file, overlaid with environment variables. When no API key is
// configured anywhere it falls back to discovering standard key env
// vars (GEMINI_API_KEY and friends).
func (f FileConfig) ResolveLLM() llm.Config {
	cfg := llm.DefaultConfig()

	if f.LLM.Provider != nil {
		cfg.Provider = *f.LLM.Provider
	}
	applyProvider(f.LLM.Anthropic, &cfg.Anthropic.APIKey, &cfg.Anthropic.Model, nil)
	applyProvider(f.LLM.OpenAI, &cfg.OpenAI.APIKey, &cfg.OpenAI.Model, &cfg.OpenAI.BaseURL)
	applyProvider(f.LLM.Gemini, &cfg.Gemini.APIKey, &cfg.Gemini.Model, nil)
	applyProvider(f.LLM.OpenRouter, &cfg.OpenRouter.APIKey, &cfg.OpenRouter.Model, &cfg.OpenRouter.BaseURL)

	cfg.ApplyEnv()

	if cfg.Validate() != nil {
		cfg.Discover()
	}

	return cfg
}

func applyProvider(src ProviderConfig, apiKey, model, baseURL *string) {
	if src.APIKey != nil {
		*apiKey = *src.APIKey
	}
	if src.Model != nil {
		*model = *src.Model
	}
	if baseURL != nil && src.BaseURL != nil {
		*baseURL = *src.BaseURL
	}
}

// DefaultPath returns the default TOML config path:
// $XDG_CONFIG_HOME/debugme/config.toml (or ~/.config/debugme/config.toml).
func DefaultPath() string {
	return filepath.Join(configHome(), "debugme", "config.toml")
}

func configHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}
