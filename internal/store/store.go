// Package store provides PostgreSQL persistence for analysis runs.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Run represents a persisted analysis run.
type Run struct {
	ID        uuid.UUID  `json:"id"`
	JobTitle  string     `json:"job_title"`
	Company   string     `json:"company,omitempty"`
	JobURL    string     `json:"job_url,omitempty"`
	Score     float64    `json:"score"`
	Result    any        `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// SaveRun persists an analysis result and returns the run ID.
func (s *Store) SaveRun(ctx context.Context, jobTitle, company, jobURL string, score float64, result any) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO analysis_runs (job_title, company, job_url, score, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		jobTitle, company, jobURL, score, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save run: %w", err)
	}
	return id, nil
}

// GetRun retrieves an analysis run by ID. Returns nil when no run exists.
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	var resultBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, job_title, COALESCE(company, ''), COALESCE(job_url, ''), score, result, created_at
		 FROM analysis_runs WHERE id = $1 AND deleted_at IS NULL`,
		runID,
	).Scan(&run.ID, &run.JobTitle, &run.Company, &run.JobURL, &run.Score, &resultBytes, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if len(resultBytes) > 0 {
		var result any
		if err := json.Unmarshal(resultBytes, &result); err == nil {
			run.Result = result
		}
	}
	return &run, nil
}

// RunFilters holds optional filters for listing runs
type RunFilters struct {
	Company  string
	MinScore float64
	Limit    int
}

// ListRuns retrieves recent analysis runs with optional filters.
func (s *Store) ListRuns(ctx context.Context, filters RunFilters) ([]Run, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, job_title, COALESCE(company, ''), COALESCE(job_url, ''), score, created_at
		FROM analysis_runs WHERE deleted_at IS NULL`
	args := []any{}
	argNum := 1

	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.JobTitle, &run.Company, &run.JobURL, &run.Score, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun soft-deletes an analysis run.
func (s *Store) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	result, err := s.pool.Exec(ctx,
		`UPDATE analysis_runs SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		runID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}
