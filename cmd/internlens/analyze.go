package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexchen/internlens/internal/engine"
	"github.com/alexchen/internlens/internal/ingest"
	"github.com/alexchen/internlens/internal/llm"
	"github.com/alexchen/internlens/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job posting",
	Long:  "Extract structured fields from a resume and a job posting, run the matching pipeline and print the analysis result as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeJobURL     string
	analyzePolicyPath string
	analyzeAPIKey     string
	analyzeOutPath    string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVar(&analyzePolicyPath, "policy", "", "Path to a JSON policy file (optional)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVarP(&analyzeOutPath, "out", "o", "", "Write the JSON result to a file instead of stdout")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable report to stderr")

	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeJobPath == "" && analyzeJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if analyzeJobPath != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("a Gemini API key is required (--api-key or GEMINI_API_KEY)")
	}

	policy, err := loadPolicy(analyzePolicyPath)
	if err != nil {
		return err
	}
	eng, err := engine.New(policy)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	resumeText, err := ingest.FromFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jobText string
	if analyzeJobPath != "" {
		jobText, err = ingest.FromFile(analyzeJobPath)
	} else {
		jobText, err = ingest.FromURL(cmd.Context(), analyzeJobURL, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to load job posting: %w", err)
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	result, err := eng.AnalyzeText(cmd.Context(), llm.NewExtractor(client, llm.TierLite), resumeText, jobText, nil)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintResult(result)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if analyzeOutPath != "" {
		if err := os.WriteFile(analyzeOutPath, output, 0644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Result written to %s\n", analyzeOutPath)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(output))
	return nil
}
