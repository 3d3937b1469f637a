package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rishabhsingh11/Ascend/internal/observability"
	"github.com/Rishabhsingh11/Ascend/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved analysis sessions",
	Long:  "List saved search sessions for a resume, or print the stored analysis for one session.",
	RunE:  runHistory,
}

var (
	historyResumeHash string
	historySessionID  string
	historyLimit      int
)

func init() {
	historyCmd.Flags().StringVar(&historyResumeHash, "resume-hash", "", "List sessions for this resume hash")
	historyCmd.Flags().StringVar(&historySessionID, "session", "", "Show the stored analysis for this session ID")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum sessions to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	if historyResumeHash == "" && historySessionID == "" {
		return fmt.Errorf("must provide --resume-hash or --session")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx := context.Background()
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if historySessionID != "" {
		return showSession(ctx, db)
	}
	return listSessions(ctx, db)
}

func showSession(ctx context.Context, db *store.Store) error {
	sessionID, err := uuid.Parse(historySessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	analysis, err := db.GetAnalysis(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load analysis: %w", err)
	}
	if analysis == nil {
		return fmt.Errorf("no analysis stored for session %s", sessionID)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysisSummary(analysis)
	printer.PrintActionPlan(analysis)
	return nil
}

func listSessions(ctx context.Context, db *store.Store) error {
	sessions, err := db.ListSessions(ctx, historyResumeHash, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No sessions found")
		return nil
	}

	for _, session := range sessions {
		readiness := "-"
		if session.MarketReadiness != nil {
			readiness = fmt.Sprintf("%.1f%%", *session.MarketReadiness)
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s  %s  roles=[%s]  jobs=%d  readiness=%s\n",
			session.ID, session.CreatedAt.Format("2006-01-02 15:04"),
			strings.Join(session.JobRoles, ", "), session.TotalJobsFound, readiness)
	}
	return nil
}
