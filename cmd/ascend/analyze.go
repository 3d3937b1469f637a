package main

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rishabhsingh11/Ascend/internal/analysis"
	"github.com/Rishabhsingh11/Ascend/internal/config"
	"github.com/Rishabhsingh11/Ascend/internal/jobs"
	"github.com/Rishabhsingh11/Ascend/internal/layout"
	"github.com/Rishabhsingh11/Ascend/internal/nlp"
	"github.com/Rishabhsingh11/Ascend/internal/observability"
	"github.com/Rishabhsingh11/Ascend/internal/resume"
	"github.com/Rishabhsingh11/Ascend/internal/schemas"
	"github.com/Rishabhsingh11/Ascend/internal/skills"
	"github.com/Rishabhsingh11/Ascend/internal/store"
	"github.com/Rishabhsingh11/Ascend/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against job postings for skill gaps",
	Long:  "Analyze a resume against target roles using live job searches (or a postings file) and produce a SkillGapAnalysis JSON report with gaps, trends, and a learning plan.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile   string
	analyzeRoles        string
	analyzePostingsFile string
	analyzeOutputFile   string
	analyzeConfigFile   string
	analyzeLocation     string
	analyzeSave         bool
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume (PDF or ParsedResume JSON, required)")
	analyzeCmd.Flags().StringVar(&analyzeRoles, "roles", "", "Comma-separated target roles, at most three are analyzed (required)")
	analyzeCmd.Flags().StringVar(&analyzePostingsFile, "postings", "", "Path to a JSON file of job postings (skips live search)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file (merged over environment)")
	analyzeCmd.Flags().StringVar(&analyzeLocation, "location", "", "Location filter for live job searches")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the session to the database (requires DATABASE_URL)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print analysis summaries")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}
	roles := splitRoles(analyzeRoles)
	if len(roles) == 0 {
		return fmt.Errorf("--roles is required")
	}

	cfg, err := loadAnalyzeConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	parsed, err := loadResume(analyzeResumeFile)
	if err != nil {
		return err
	}

	tagger, closeTagger, err := buildTagger(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeTagger()

	extractor := skills.NewExtractor(nil, tagger)

	resumeSkills := parsed.Skills
	if len(resumeSkills) == 0 {
		resumeSkills = extractor.Extract(ctx, resumeText(parsed))
	}

	postings, err := gatherPostings(ctx, cfg, roles)
	if err != nil {
		return err
	}
	if len(postings) == 0 {
		return fmt.Errorf("no job postings to analyze (check provider credentials or --postings)")
	}

	analyzer := analysis.NewAnalyzer(extractor, nil, nil, nil)
	report, err := analyzer.Analyze(ctx, resumeSkills, postings, roles)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if schemas.ResolveSchemaPath(schemas.SkillGapAnalysisSchema) != "" {
		if err := schemas.ValidateAnalysis(report); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("analysis does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := writeOutput(analyzeOutputFile, jsonBytes); err != nil {
		return err
	}

	if analyzeSave {
		if err := saveSession(ctx, cfg, parsed, roles, postings, report); err != nil {
			return err
		}
	}

	if analyzeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintParsedResume(parsed)
		printer.PrintPostings(postings)
		for i := range report.RoleAnalyses {
			printer.PrintRoleAnalysis(&report.RoleAnalyses[i])
		}
		printer.PrintAnalysisSummary(report)
		printer.PrintActionPlan(report)
	}

	return nil
}

func loadAnalyzeConfig() (config.Config, error) {
	cfg := config.FromEnv()
	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadResume accepts either a PDF or an already parsed JSON document.
func loadResume(path string) (*types.ParsedResume, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		pages, err := layout.ReadGlyphs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume: %w", err)
		}
		return resume.Parse(pages), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	var parsed types.ParsedResume
	if err := json.Unmarshal(content, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &parsed, nil
}

// resumeText flattens a parsed resume into text for skill extraction, used
// when the resume has no skills section.
func resumeText(parsed *types.ParsedResume) string {
	var sb strings.Builder
	sb.WriteString(parsed.Summary)
	for _, exp := range parsed.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Position)
		for _, bullet := range exp.Description {
			sb.WriteString(" ")
			sb.WriteString(bullet)
		}
	}
	for _, project := range parsed.Projects {
		sb.WriteString(" ")
		sb.WriteString(project)
	}
	return sb.String()
}

func buildTagger(ctx context.Context, cfg config.Config) (skills.Tagger, func(), error) {
	if cfg.GeminiAPIKey == "" {
		return nil, func() {}, nil
	}

	model := cfg.GeminiModel
	if model == "" {
		model = nlp.DefaultGeminiModel
	}
	tagger, err := nlp.NewGeminiTagger(ctx, cfg.GeminiAPIKey, model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini tagger: %w", err)
	}
	return tagger, func() { _ = tagger.Close() }, nil
}

// gatherPostings reads the postings file when given, otherwise runs one
// live search per role through the configured providers.
func gatherPostings(ctx context.Context, cfg config.Config, roles []string) ([]types.JobPosting, error) {
	if analyzePostingsFile != "" {
		content, err := os.ReadFile(analyzePostingsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read postings file: %w", err)
		}
		var postings []types.JobPosting
		if err := json.Unmarshal(content, &postings); err != nil {
			return nil, fmt.Errorf("failed to parse postings JSON: %w", err)
		}
		return postings, nil
	}

	aggregator, err := buildAggregator(cfg)
	if err != nil {
		return nil, err
	}

	var all []types.JobPosting
	for _, role := range roles {
		query := jobs.SearchQuery{
			JobTitle:       role,
			Country:        cfg.Country,
			PostingHours:   cfg.PostingHours,
			EmploymentType: cfg.EmploymentType,
			MaxResults:     cfg.MaxJobsPerRole,
			Location:       analyzeLocation,
		}

		found, hours, err := aggregator.SearchWithFallbackDates(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("job search for %q failed: %w", role, err)
		}
		log.Printf("job search: %d postings for %q within %d hours", len(found), role, hours)
		all = append(all, found...)
	}
	return all, nil
}

func buildAggregator(cfg config.Config) (*jobs.Aggregator, error) {
	var clients []jobs.Client
	if cfg.AdzunaAppID != "" && cfg.AdzunaAppKey != "" {
		clients = append(clients, jobs.NewAdzunaClient(cfg.AdzunaAppID, cfg.AdzunaAppKey))
	}
	if cfg.JoobleAPIKey != "" {
		clients = append(clients, jobs.NewJoobleClient(cfg.JoobleAPIKey))
	}
	if cfg.RapidAPIKey != "" {
		clients = append(clients, jobs.NewJSearchClient(cfg.RapidAPIKey, cfg.RapidAPIHost))
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("no job search providers configured (set ADZUNA_APP_ID/ADZUNA_APP_KEY, JOOBLE_API_KEY, or RAPIDAPI_KEY)")
	}
	return jobs.NewAggregator(clients...), nil
}

// saveSession persists the search session, its postings, and the analysis.
func saveSession(ctx context.Context, cfg config.Config, parsed *types.ParsedResume, roles []string, postings []types.JobPosting, report *types.SkillGapAnalysis) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL required with --save")
	}

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	hash, err := fileHash(analyzeResumeFile)
	if err != nil {
		return err
	}

	sessionID, err := db.CreateSession(ctx, hash, filepath.Base(analyzeResumeFile),
		parsed.ContactInfo.Name, parsed.ContactInfo.Email, roles)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	matchedRoles := make([]string, len(postings))
	for i, posting := range postings {
		matchedRoles[i] = analysis.MatchRole(posting.Title, roles)
	}
	if err := db.SavePostings(ctx, sessionID, postings, matchedRoles); err != nil {
		return fmt.Errorf("failed to save postings: %w", err)
	}

	if err := db.SaveAnalysis(ctx, sessionID, report); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	if err := db.CompleteSession(ctx, sessionID, len(postings), report.OverallMarketReadiness); err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Saved session: %s\n", sessionID)
	return nil
}

func splitRoles(raw string) []string {
	var roles []string
	for _, role := range strings.Split(raw, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}

func fileHash(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume for hashing: %w", err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(content)), nil
}
