package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexchen/internlens/internal/config"
	"github.com/alexchen/internlens/internal/engine"
	"github.com/alexchen/internlens/internal/llm"
	"github.com/alexchen/internlens/internal/server"
)

var (
	servePort       int
	servePolicyPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the analysis endpoints.

Without a GEMINI_API_KEY the raw-text endpoint is disabled and only
already-extracted fields can be analyzed.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&servePolicyPath, "policy", "", "Path to a JSON policy file (optional, defaults are used otherwise)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	policy, err := loadPolicy(servePolicyPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(policy)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	var extractor engine.FieldExtractor
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		extractor = llm.NewExtractor(client, llm.TierLite)
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, raw-text analysis is disabled")
	}

	return server.New(server.Config{Port: servePort}, eng, extractor, logger).Start()
}

// loadPolicy returns the default policy or one loaded from a file
func loadPolicy(path string) (config.Policy, error) {
	if path == "" {
		return config.Default(), nil
	}
	policy, err := config.Load(path)
	if err != nil {
		return config.Policy{}, fmt.Errorf("failed to load policy: %w", err)
	}
	return policy, nil
}
