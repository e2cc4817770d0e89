package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/config"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/ingestion"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/observability"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured candidate profile from a résumé text file",
	Long:  "Extract a structured candidate profile from a plain-text résumé. The result is validated against the candidate schema and written as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractRole       string
	extractProvider   string
	extractModel      string
	extractAPIKey     string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to résumé text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	extractCmd.Flags().StringVarP(&extractRole, "role", "r", "", "Target role the résumé is read against")
	extractCmd.Flags().StringVar(&extractProvider, "provider", "", "LLM provider: gemini or ollama")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Model name override")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{Provider: extractProvider, Model: extractModel, APIKey: extractAPIKey})
	if err != nil {
		return err
	}

	text, meta, err := ingestion.IngestFromFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read résumé: %w", err)
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	extractor, logger, err := newExtractor(client, lex, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	candidate, err := extractor.Extract(ctx, text, extractRole)
	if err != nil {
		return fmt.Errorf("failed to extract candidate: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintCandidate(candidate)
	}

	jsonBytes, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	if extractOutputFile == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return err
	}
	if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Extracted %s (%s) to %s\n", candidate.FullName, meta.FileName, extractOutputFile)
	return nil
}
