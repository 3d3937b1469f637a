//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

func getTestStore(t *testing.T) *Store {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	s, err := Connect(context.Background(), databaseURL)
	require.NoError(t, err)
	require.NoError(t, s.EnsureSchema(context.Background()))
	return s
}

func TestIntegration_SessionLifecycle(t *testing.T) {
	s := getTestStore(t)
	defer s.Close()
	ctx := context.Background()

	sessionID, err := s.CreateSession(ctx, "hash-1", "resume.pdf", "Jane Doe", "jane@example.com",
		[]string{"Data Engineer"})
	require.NoError(t, err)
	defer func() { _ = s.DeleteSession(ctx, sessionID) }()

	t.Run("save and load postings", func(t *testing.T) {
		postings := []types.JobPosting{
			{
				Title:          "Data Engineer",
				Company:        "Acme",
				Location:       "Boston, MA",
				Description:    "SQL and Docker",
				RequiredSkills: []string{"sql", "docker"},
				URL:            "https://example.com/1",
				Source:         "adzuna",
			},
		}
		require.NoError(t, s.SavePostings(ctx, sessionID, postings, []string{"Data Engineer"}))

		loaded, err := s.GetSessionPostings(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, postings[0].Title, loaded[0].Title)
		assert.Equal(t, postings[0].RequiredSkills, loaded[0].RequiredSkills)
	})

	t.Run("save and load analysis", func(t *testing.T) {
		analysis := &types.SkillGapAnalysis{
			CommonGaps:             []string{"docker"},
			OverallMarketReadiness: 64.5,
			TotalJobsAnalyzed:      1,
			AnalysisDate:           "2026-08-29",
		}
		require.NoError(t, s.SaveAnalysis(ctx, sessionID, analysis))

		loaded, err := s.GetAnalysis(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, analysis.CommonGaps, loaded.CommonGaps)
		assert.InDelta(t, 64.5, loaded.OverallMarketReadiness, 0.01)
	})

	t.Run("complete and list", func(t *testing.T) {
		require.NoError(t, s.CompleteSession(ctx, sessionID, 1, 64.5))

		sessions, err := s.ListSessions(ctx, "hash-1", 10)
		require.NoError(t, err)
		require.NotEmpty(t, sessions)
		assert.NotNil(t, sessions[0].CompletedAt)
	})

	t.Run("missing analysis is nil", func(t *testing.T) {
		otherID, err := s.CreateSession(ctx, "hash-2", "other.pdf", "", "", nil)
		require.NoError(t, err)
		defer func() { _ = s.DeleteSession(ctx, otherID) }()

		loaded, err := s.GetAnalysis(ctx, otherID)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}
