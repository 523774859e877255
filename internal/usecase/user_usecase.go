package usecase

import (
	"context"
	"io"

	"job-board/internal/domain/user"
	ucuser "job-board/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, in ucuser.ProfileInput) (user.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.ProfileInput) (user.User, error)
	UploadResume(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (user.User, error)
	ResumeURL(ctx context.Context, userID uuid.UUID) (string, error)
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(users user.Repository, resumes ucuser.ResumeStore, publicBaseURL string) *User {
	return &User{svc: ucuser.NewService(users, resumes, publicBaseURL)}
}

func (u *User) CreateProfile(ctx context.Context, userID uuid.UUID, in ucuser.ProfileInput) (user.User, error) {
	return u.svc.CreateProfile(ctx, userID, in)
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	return u.svc.GetProfile(ctx, userID)
}

func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.ProfileInput) (user.User, error) {
	return u.svc.UpdateProfile(ctx, userID, in)
}

func (u *User) UploadResume(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (user.User, error) {
	return u.svc.UploadResume(ctx, userID, filename, r)
}

func (u *User) ResumeURL(ctx context.Context, userID uuid.UUID) (string, error) {
	return u.svc.ResumeURL(ctx, userID)
}
