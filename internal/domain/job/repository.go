package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("job not found")
	ErrDuplicate = errors.New("job with the same title and company already exists")
)

type Repository interface {
	Create(ctx context.Context, j Job) error
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, f Filter) ([]Job, error)
	ListByPoster(ctx context.Context, userID uuid.UUID) ([]Job, error)
}
