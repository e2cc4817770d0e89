package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"provider": "ollama",
		"model": "mistral",
		"ollama_url": "http://gpu:11434",
		"database_url": "postgres://localhost/cv",
		"port": 9090,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, "http://gpu:11434", cfg.OllamaURL)
	assert.Equal(t, "postgres://localhost/cv", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	lexiconFile := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(lexiconFile, []byte("skills: [Go]\n"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "defaults are valid", cfg: Defaults()},
		{name: "provider case-insensitive", cfg: Config{Provider: "Ollama"}},
		{name: "existing lexicon", cfg: Config{LexiconPath: lexiconFile}},
		{name: "unknown provider", cfg: Config{Provider: "openai"}, wantErr: "unknown provider"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port'"},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "bad log level", cfg: Config{LogLevel: "trace"}, wantErr: "unknown log level"},
		{name: "relative ollama url", cfg: Config{OllamaURL: "localhost:11434"}, wantErr: "'ollama_url'"},
		{name: "relative github url", cfg: Config{GithubAPIURL: "/api"}, wantErr: "'github_api_url'"},
		{name: "missing lexicon", cfg: Config{LexiconPath: "/nonexistent/lexicon.yaml"}, wantErr: "lexicon file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Provider: "ollama",
		Port:     0,
		Verbose:  true,
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "ollama", merged.Provider) // Keep original
	assert.Equal(t, 8080, merged.Port)         // Use default
	assert.Equal(t, "info", merged.LogLevel)   // Use default
	assert.Equal(t, "https://api.github.com", merged.GithubAPIURL)
	assert.True(t, merged.Verbose) // Bools are never merged
	assert.Empty(t, merged.APIKey)

	// The receiver is untouched
	assert.Equal(t, 0, cfg.Port)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("DATABASE_URL", "postgres://db/cv")
	t.Setenv("GITHUB_TOKEN", "ghp_x")
	t.Setenv("PORT", "9000")

	cfg := FromEnv()
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "postgres://db/cv", cfg.DatabaseURL)
	assert.Equal(t, "ghp_x", cfg.GithubToken)
	assert.Equal(t, 9000, cfg.Port)

	t.Setenv("PORT", "not-a-number")
	assert.Equal(t, 0, FromEnv().Port)
}
