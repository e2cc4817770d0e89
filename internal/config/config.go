// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment, CLI
// flags or Defaults.
type Config struct {
	// Model
	Provider  string `json:"provider,omitempty"`   // "gemini" or "ollama"
	Model     string `json:"model,omitempty"`      // Overrides the provider's standard model
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key
	OllamaURL string `json:"ollama_url,omitempty"` // Base URL of the Ollama daemon

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Matching
	LexiconPath string `json:"lexicon_path,omitempty"` // YAML lexicon replacing the built-in one

	// Repository scan
	GithubAPIURL string `json:"github_api_url,omitempty"`
	GithubToken  string `json:"github_token,omitempty"`

	// Server and output
	Port     int    `json:"port,omitempty"`
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn or error
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Provider:     "gemini",
		OllamaURL:    "http://localhost:11434",
		GithubAPIURL: "https://api.github.com",
		Port:         8080,
		LogLevel:     "info",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration from environment variables. Unset
// variables leave fields empty.
func FromEnv() Config {
	cfg := Config{
		Provider:     os.Getenv("LLM_PROVIDER"),
		Model:        os.Getenv("LLM_MODEL"),
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		OllamaURL:    os.Getenv("OLLAMA_URL"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		LexiconPath:  os.Getenv("LEXICON_PATH"),
		GithubAPIURL: os.Getenv("GITHUB_API_URL"),
		GithubToken:  os.Getenv("GITHUB_TOKEN"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

var validProviders = map[string]bool{"gemini": true, "ollama": true}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those depend on the command.
func (c *Config) Validate() error {
	if c.Provider != "" && !validProviders[strings.ToLower(c.Provider)] {
		return fmt.Errorf("config error: unknown provider %q (want gemini or ollama)", c.Provider)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}

	for name, raw := range map[string]string{"ollama_url": c.OllamaURL, "github_api_url": c.GithubAPIURL} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: '%s' must be an absolute URL", name)
		}
	}

	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// It is applied in layers: flags over file over environment over Defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&result.Provider, defaults.Provider)
	fill(&result.Model, defaults.Model)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.OllamaURL, defaults.OllamaURL)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.LexiconPath, defaults.LexiconPath)
	fill(&result.GithubAPIURL, defaults.GithubAPIURL)
	fill(&result.GithubToken, defaults.GithubToken)
	fill(&result.LogLevel, defaults.LogLevel)

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
