package dto

import (
	"time"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Role        string         `json:"role"`
	Skills      []string       `json:"skills"`
	Resume      string         `json:"resume"`
	Preferences map[string]any `json:"preferences"`
	Company     string         `json:"company,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func NewUserResponse(u user.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Skills:      skills,
		Resume:      u.Resume,
		Preferences: prefs,
		Company:     u.Company,
		CreatedAt:   u.CreatedAt,
	}
}

type AuthResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}
