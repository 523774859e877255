package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobSelect = `SELECT j.id, j.title, j.description, j.location, j.category, j.salary, j.job_type,
		j.company, j.skills_required, j.posted_by, COALESCE(u.name, ''), j.created_at
	 FROM jobs j
	 LEFT JOIN users u ON u.id = j.posted_by`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, location, category, salary, job_type, company, skills_required, posted_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		j.ID, j.Title, j.Description, j.Location, j.Category, j.Salary, j.JobType, j.Company, j.SkillsRequired, j.PostedBy,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "jobs_title_company_key") {
			return job.ErrDuplicate
		}
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, location = $4, category = $5, salary = $6,
		     job_type = $7, company = $8, skills_required = $9
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Location, j.Category, j.Salary, j.JobType, j.Company, j.SkillsRequired,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "jobs_title_company_key") {
			return job.ErrDuplicate
		}
		return fmt.Errorf("update job: %w", err)
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

// List returns jobs newest first. Filters match case-insensitively.
func (r *PostgresJobRepository) List(ctx context.Context, f job.Filter) ([]job.Job, error) {
	where, args := jobFilterClause(f)
	return r.queryJobs(ctx, jobSelect+where+` ORDER BY j.created_at DESC, j.id`, args...)
}

func (r *PostgresJobRepository) ListByPoster(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	return r.queryJobs(ctx, jobSelect+` WHERE j.posted_by = $1 ORDER BY j.created_at DESC, j.id`, userID)
}

func (r *PostgresJobRepository) queryJobs(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func jobFilterClause(f job.Filter) (string, []any) {
	var conds []string
	var args []any
	add := func(col, v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		args = append(args, v)
		conds = append(conds, "LOWER("+col+") = LOWER($"+strconv.Itoa(len(args))+")")
	}
	add("j.category", f.Category)
	add("j.location", f.Location)
	add("j.job_type", f.JobType)

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Location, &j.Category, &j.Salary, &j.JobType,
		&j.Company, &j.SkillsRequired, &j.PostedBy, &j.PostedByName, &j.CreatedAt,
	)
	return j, err
}
