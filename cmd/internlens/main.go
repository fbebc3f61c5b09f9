// Package main provides the entry point for the InternLens CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "internlens",
	Short: "InternLens resume-to-job matching engine",
	Long:  "InternLens scores resumes against job descriptions: skill comparison, responsibility coverage, education checks and writing-quality feedback, served over a REST API or run from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
