package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// jobPostingColumns is the column list every posting query selects.
const jobPostingColumns = `id, title, description, skills, level, town,
	district, province, salary, category, work_type, work_setup, posted_at`

// scanJobPosting reads one posting row into the shared type. The
// skills column is JSONB.
func scanJobPosting(row pgx.Row) (*types.JobPosting, error) {
	var (
		p          types.JobPosting
		id         uuid.UUID
		skillsJSON []byte
		postedAt   *time.Time
	)

	err := row.Scan(&id, &p.Title, &p.Description, &skillsJSON, &p.Level,
		&p.Location.Town, &p.Location.District, &p.Location.Province,
		&p.Salary, &p.Category, &p.WorkType, &p.WorkSetup, &postedAt)
	if err != nil {
		return nil, err
	}

	p.ID = id.String()
	if postedAt != nil {
		p.PostedAt = *postedAt
	}
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &p.Skills)
	}
	return &p, nil
}

// GetJobPosting retrieves a posting by ID. Returns (nil, nil) when no
// posting exists.
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`, id)

	p, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return p, nil
}

// JobPostingFilters holds optional filters for listing postings.
type JobPostingFilters struct {
	Category string
	Town     string
	Limit    int
}

// ListVisibleJobPostings retrieves active, unexpired postings ordered
// most recent first. This is the corpus the ranker scores.
func (db *DB) ListVisibleJobPostings(ctx context.Context, filters JobPostingFilters) ([]types.JobPosting, error) {
	if filters.Limit == 0 {
		filters.Limit = 500
	}

	query := `SELECT ` + jobPostingColumns + ` FROM job_postings
		WHERE status = 'active' AND (expires_at IS NULL OR expires_at > NOW())`
	args := []any{}
	argNum := 1

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}
	if filters.Town != "" {
		query += fmt.Sprintf(" AND town ILIKE $%d", argNum)
		args = append(args, "%"+filters.Town+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY posted_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []types.JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *p)
	}
	return postings, rows.Err()
}

// CountVisibleJobPostings counts the postings ListVisibleJobPostings
// would return without a limit.
func (db *DB) CountVisibleJobPostings(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_postings
		 WHERE status = 'active' AND (expires_at IS NULL OR expires_at > NOW())`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count job postings: %w", err)
	}
	return count, nil
}

// SaveJobPosting inserts or updates a posting. Intended for seeding
// and test fixtures more than production write paths.
func (db *DB) SaveJobPosting(ctx context.Context, p *types.JobPosting) (uuid.UUID, error) {
	skillsJSON, err := json.Marshal(p.Skills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	var id uuid.UUID
	if strings.TrimSpace(p.ID) != "" {
		id, err = uuid.Parse(p.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid job posting id: %w", err)
		}
	} else {
		id = uuid.New()
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_postings (id, title, description, skills, level, town,
		     district, province, salary, category, work_type, work_setup,
		     posted_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 'active')
		 ON CONFLICT (id) DO UPDATE SET
		     title = $2, description = $3, skills = $4, level = $5, town = $6,
		     district = $7, province = $8, salary = $9, category = $10,
		     work_type = $11, work_setup = $12, posted_at = $13, updated_at = NOW()`,
		id, p.Title, p.Description, skillsJSON, p.Level, p.Location.Town,
		p.Location.District, p.Location.Province, p.Salary, p.Category,
		p.WorkType, p.WorkSetup, p.PostedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job posting: %w", err)
	}
	return id, nil
}
