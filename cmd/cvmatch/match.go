package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/analysis"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/config"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/observability"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score an extracted candidate against a target role",
	Long:  "Score the skills of a candidate JSON file (as written by extract) against a target role and an optional must-have list.",
	RunE:  runMatch,
}

var (
	matchCandidateFile string
	matchRole          string
	matchMustHave      string
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidateFile, "candidate", "c", "", "Path to candidate JSON file (required)")
	matchCmd.Flags().StringVarP(&matchRole, "role", "r", "", "Target role (required)")
	matchCmd.Flags().StringVar(&matchMustHave, "must-have", "", "Comma-separated must-have skills")
	_ = matchCmd.MarkFlagRequired("candidate")
	_ = matchCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{})
	if err != nil {
		return err
	}

	data, err := os.ReadFile(matchCandidateFile)
	if err != nil {
		return fmt.Errorf("failed to read candidate file: %w", err)
	}
	var candidate types.Candidate
	if err := json.Unmarshal(data, &candidate); err != nil {
		return fmt.Errorf("failed to parse candidate JSON: %w", err)
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

	svc := analysis.NewService(nil, lex)
	result, err := svc.Match(&types.MatchRequest{
		Skills:      candidate.Skills,
		TargetRole:  matchRole,
		MustHaveCSV: matchMustHave,
	})
	if err != nil {
		return fmt.Errorf("invalid match request: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintMatch(matchRole, result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	return err
}
