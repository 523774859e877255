package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"

	"golang.org/x/crypto/bcrypt"
)

const (
	DemoRecruiterEmail    = "recruiter@demo.local"
	demoRecruiterPassword = "recruiter123"
)

type RecruiterSeeder struct{}

func (RecruiterSeeder) Name() string { return "recruiter" }

func (RecruiterSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "name", "email", "password_hash", "role", "company"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoRecruiterPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = db.Exec(
		ctx,
		`INSERT INTO users (id, name, email, password_hash, role, company)
		 VALUES (gen_random_uuid(), $1, $2, $3, 'recruiter', $4)
		 ON CONFLICT (email) DO NOTHING`,
		"Demo Recruiter",
		DemoRecruiterEmail,
		string(hash),
		"Demo Corp",
	)
	return err
}
