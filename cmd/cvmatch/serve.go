package main

import (
	"context"
	"fmt"
	"log"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/analysis"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/config"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/db"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/llm"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/profiles"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/server"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the résumé analysis, match and candidate lookup endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{Port: servePort})
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

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

	svc := analysis.NewService(extractor, lex,
		analysis.WithStore(database),
		analysis.WithRepoScanner(newGithubScanner(cfg)),
		analysis.WithProfileLookup(profiles.NewLinkedIn(nil)),
	)

	log.Printf("Using %s model %s", cfg.Provider, client.GetModel(llm.TierStandard))

	srv := server.New(server.Config{Port: cfg.Port, RateLimit: ratelimit.LoadConfig()}, svc)
	return srv.Start()
}
