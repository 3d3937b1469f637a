package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Rishabhsingh11/Ascend/internal/schemas"
	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// SaveAnalysis stores a skill-gap analysis for a session, replacing any
// earlier one. When the schema file is available the analysis is checked
// against it first; a malformed document is rejected rather than persisted.
func (s *Store) SaveAnalysis(ctx context.Context, sessionID uuid.UUID, analysis *types.SkillGapAnalysis) error {
	if schemas.ResolveSchemaPath(schemas.SkillGapAnalysisSchema) != "" {
		if err := schemas.ValidateAnalysis(analysis); err != nil {
			return fmt.Errorf("refusing to save invalid analysis: %w", err)
		}
	}

	content, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO session_analyses (session_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (session_id) DO UPDATE SET content = $2, created_at = NOW()`,
		sessionID, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves the stored analysis for a session, or nil if none
// exists.
func (s *Store) GetAnalysis(ctx context.Context, sessionID uuid.UUID) (*types.SkillGapAnalysis, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM session_analyses WHERE session_id = $1`,
		sessionID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis types.SkillGapAnalysis
	if err := json.Unmarshal(content, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &analysis, nil
}
