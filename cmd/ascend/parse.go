package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rishabhsingh11/Ascend/internal/layout"
	"github.com/Rishabhsingh11/Ascend/internal/observability"
	"github.com/Rishabhsingh11/Ascend/internal/resume"
	"github.com/Rishabhsingh11/Ascend/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume PDF into structured JSON",
	Long:  "Parse a resume PDF into a structured ParsedResume JSON document that validates against the parsed_resume schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume PDF file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed resume")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	if parseInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	pages, err := layout.ReadGlyphs(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	parsed := resume.Parse(pages)

	// Validate against schema (if schema file exists)
	if schemas.ResolveSchemaPath(schemas.ParsedResumeSchema) != "" {
		if err := schemas.ValidateParsedResume(parsed); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("parsed resume does not validate against schema: %w", err)
			}
			// Schema loading issue - log warning and continue
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := writeOutput(parseOutputFile, jsonBytes); err != nil {
		return err
	}

	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintParsedResume(parsed)
	}

	return nil
}

// writeOutput writes JSON to a file, or stdout when no path is given.
func writeOutput(path string, jsonBytes []byte) error {
	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(path, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
