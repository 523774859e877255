package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleRecruiter
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Skills       []string
	Resume       string
	Preferences  map[string]any
	Company      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasProfile reports whether profile fields were already filled in.
func (u User) HasProfile() bool {
	return len(u.Skills) > 0 || u.Resume != "" || len(u.Preferences) > 0
}

func (u User) IsRecruiter() bool {
	return u.Role == RoleRecruiter
}
