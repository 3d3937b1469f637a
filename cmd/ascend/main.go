// Package main provides the entry point for the Ascend career analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ascend",
	Short: "Resume parsing and skill-gap analysis",
	Long:  "Ascend parses resumes into structured JSON and analyzes them against live job postings to report skill gaps, market trends, and a phased learning plan.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
