package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/config"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/github"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/observability"
	"github.com/spf13/cobra"
)

var scanGithubCmd = &cobra.Command{
	Use:   "scan-github",
	Short: "List a GitHub user's recent repositories and languages",
	Long:  "List up to eight recently updated, non-fork repositories of a GitHub profile with their language byte counts.",
	RunE:  runScanGithub,
}

var scanGithubURL string

func init() {
	scanGithubCmd.Flags().StringVarP(&scanGithubURL, "url", "u", "", "GitHub profile URL (required)")
	_ = scanGithubCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(scanGithubCmd)
}

func runScanGithub(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{})
	if err != nil {
		return err
	}

	scanner := newGithubScanner(cfg)
	repos, err := scanner.Scan(context.Background(), scanGithubURL)
	if err != nil {
		return fmt.Errorf("failed to scan repositories: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRepos(repos)
	}

	jsonBytes, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repositories: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	return err
}

func newGithubScanner(cfg config.Config) *github.Scanner {
	return github.NewScanner(github.WithBaseURL(cfg.GithubAPIURL), github.WithToken(cfg.GithubToken))
}
