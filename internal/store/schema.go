package store

import (
	"context"
	"fmt"
)

// schema creates the session history tables. Postings and analyses cascade
// away with their session.
const schema = `
CREATE TABLE IF NOT EXISTS search_sessions (
    id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    resume_hash      TEXT NOT NULL,
    resume_filename  TEXT NOT NULL,
    candidate_name   TEXT,
    candidate_email  TEXT,
    job_roles        JSONB,
    total_jobs_found INTEGER DEFAULT 0,
    market_readiness DOUBLE PRECISION,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at     TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS session_postings (
    id              BIGSERIAL PRIMARY KEY,
    session_id      UUID NOT NULL REFERENCES search_sessions(id) ON DELETE CASCADE,
    title           TEXT NOT NULL,
    company         TEXT NOT NULL,
    location        TEXT,
    description     TEXT,
    required_skills JSONB,
    salary          TEXT,
    url             TEXT,
    posted_date     TEXT,
    source          TEXT NOT NULL,
    matched_role    TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS session_analyses (
    session_id UUID PRIMARY KEY REFERENCES search_sessions(id) ON DELETE CASCADE,
    content    JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sessions_resume_hash ON search_sessions(resume_hash);
CREATE INDEX IF NOT EXISTS idx_postings_session ON session_postings(session_id);
`

// EnsureSchema creates the store's tables and indexes if missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
