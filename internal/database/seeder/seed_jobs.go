package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"

	"github.com/google/uuid"
)

type demoJob struct {
	Title    string
	Location string
	Category string
	Salary   string
	JobType  string
	Skills   []string
}

var demoJobs = []demoJob{
	{Title: "Backend Engineer", Location: "Remote", Category: "Engineering", Salary: "90000", JobType: "full-time", Skills: []string{"go", "sql", "redis"}},
	{Title: "Frontend Engineer", Location: "Jakarta", Category: "Engineering", Salary: "75000", JobType: "full-time", Skills: []string{"javascript", "react", "css"}},
	{Title: "Data Analyst", Location: "Remote", Category: "Data", Salary: "60000", JobType: "contract", Skills: []string{"sql", "python"}},
	{Title: "DevOps Intern", Location: "Bandung", Category: "Operations", Salary: "20000", JobType: "internship", Skills: []string{"docker", "kubernetes"}},
}

// JobsSeeder posts demoJobs as the demo recruiter. It must run after
// RecruiterSeeder.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "description", "location", "category", "salary", "job_type", "company", "skills_required", "posted_by"); err != nil {
		return err
	}

	var posterID uuid.UUID
	var company string
	if err := db.QueryRow(
		ctx,
		`SELECT id, COALESCE(company, '') FROM users WHERE email = $1`,
		DemoRecruiterEmail,
	).Scan(&posterID, &company); err != nil {
		return fmt.Errorf("load demo recruiter: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, j := range demoJobs {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, title, description, location, category, salary, job_type, company, skills_required, posted_by)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (title, company) DO NOTHING`,
			j.Title,
			"Demo listing for "+j.Title+".",
			j.Location,
			j.Category,
			j.Salary,
			j.JobType,
			company,
			j.Skills,
			posterID,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
