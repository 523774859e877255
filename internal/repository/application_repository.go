package repository

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, resume, cover_letter, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.JobID, a.ApplicantID, a.Resume, a.CoverLetter, string(a.Status),
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "applications_job_applicant_key") {
			return application.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.resume, a.cover_letter, a.status, a.created_at, a.updated_at,
		        u.name, u.email, j.title, j.company
		 FROM applications a
		 JOIN users u ON u.id = a.applicant_id
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.id = $1`,
		id,
	)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ExistsForApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.resume, a.cover_letter, a.status, a.created_at, a.updated_at,
		        u.name, u.email, j.title, j.company
		 FROM applications a
		 JOIN users u ON u.id = a.applicant_id
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	err := row.Scan(
		&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter, &status, &a.CreatedAt, &a.UpdatedAt,
		&a.ApplicantName, &a.ApplicantEmail, &a.JobTitle, &a.JobCompany,
	)
	a.Status = application.Status(status)
	return a, err
}
