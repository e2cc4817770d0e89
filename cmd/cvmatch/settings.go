package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/config"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/lexicon"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/llm"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/observability"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/parsing"
	"go.uber.org/zap"
)

// loadSettings resolves the configuration: flags over config file over
// environment over built-in defaults.
func loadSettings(flags config.Config) (config.Config, error) {
	merged := flags
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	merged = merged.MergeWithDefaults(config.FromEnv())
	merged = merged.MergeWithDefaults(config.Defaults())
	merged.Verbose = merged.Verbose || verbose

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadLexicon returns the configured lexicon or the built-in one
func loadLexicon(cfg config.Config) (*lexicon.Lexicon, error) {
	if cfg.LexiconPath == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.Load(cfg.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return lex, nil
}

// newLLMClient creates the generation client for the configured provider
func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	llmCfg := llm.ConfigFor(strings.ToLower(cfg.Provider), cfg.Model, cfg.OllamaURL)
	if llmCfg == nil {
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
	if llmCfg.Provider == llm.ProviderGemini && cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or api_key in config)")
	}
	return llm.NewClient(ctx, llmCfg, cfg.APIKey)
}

// newExtractor wires an extractor with a zap response sink at the configured level
func newExtractor(client llm.Client, lex *lexicon.Lexicon, cfg config.Config) (*parsing.Extractor, *zap.Logger, error) {
	logger, err := observability.NewLogger(cfg.LogLevel, "console")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return parsing.NewExtractor(client, lex, parsing.WithSink(observability.NewZapSink(logger))), logger, nil
}
