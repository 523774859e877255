package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrJobDuplicate = errors.New("job with the same title and company already exists")
	ErrNotJobOwner  = errors.New("not the owner of this job")
)

type CreateJobInput struct {
	Title          string
	Description    string
	Location       string
	Category       string
	Salary         string
	JobType        string
	Company        string
	SkillsRequired []string
}

// UpdateJobInput leaves nil fields unchanged. Category is mandatory.
type UpdateJobInput struct {
	Title          *string
	Description    *string
	Location       *string
	Category       string
	Salary         *string
	JobType        *string
	Company        *string
	SkillsRequired []string
}

type JobUsecase interface {
	Create(ctx context.Context, posterID uuid.UUID, in CreateJobInput) (job.Job, error)
	List(ctx context.Context, f job.Filter) ([]job.Job, error)
	ListByPoster(ctx context.Context, posterID uuid.UUID) ([]job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Update(ctx context.Context, posterID, id uuid.UUID, in UpdateJobInput) (job.Job, error)
	Delete(ctx context.Context, posterID, id uuid.UUID) error
}

type Jobs struct {
	jobs   job.Repository
	cache  JobCache
	ttl    time.Duration
	logger *log.Logger
}

func NewJobUsecase(jobs job.Repository, cache JobCache, ttl time.Duration, logger *log.Logger) *Jobs {
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{jobs: jobs, cache: cache, ttl: ttl, logger: logger}
}

func (u *Jobs) Create(ctx context.Context, posterID uuid.UUID, in CreateJobInput) (job.Job, error) {
	fields := []*string{&in.Title, &in.Description, &in.Location, &in.Category, &in.Salary, &in.JobType, &in.Company}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
		if *f == "" {
			return job.Job{}, ErrInvalidInput
		}
	}
	skills := normalizeSkillList(in.SkillsRequired)
	if len(skills) == 0 {
		return job.Job{}, ErrInvalidInput
	}

	j := job.Job{
		ID:             uuid.New(),
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		Category:       in.Category,
		Salary:         in.Salary,
		JobType:        in.JobType,
		Company:        in.Company,
		SkillsRequired: skills,
		PostedBy:       posterID,
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, mapJobErr(err)
	}
	u.invalidate(ctx)

	return u.Get(ctx, j.ID)
}

// List serves from cache when possible; cache failures fall through to the
// database.
func (u *Jobs) List(ctx context.Context, f job.Filter) ([]job.Job, error) {
	key := JobListCacheKey(f)
	if u.cache != nil {
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, jobs, u.ttl); err != nil {
			u.logger.Printf("[Cache] set job list failed key=%s err=%v", key, err)
		}
	}
	return jobs, nil
}

func (u *Jobs) ListByPoster(ctx context.Context, posterID uuid.UUID) ([]job.Job, error) {
	jobs, err := u.jobs.ListByPoster(ctx, posterID)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, mapJobErr(err)
	}
	return j, nil
}

func (u *Jobs) Update(ctx context.Context, posterID, id uuid.UUID, in UpdateJobInput) (job.Job, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return job.Job{}, ErrInvalidInput
	}

	j, err := u.owned(ctx, posterID, id)
	if err != nil {
		return job.Job{}, err
	}

	set := func(dst *string, v *string) {
		if v == nil {
			return
		}
		if t := strings.TrimSpace(*v); t != "" {
			*dst = t
		}
	}
	set(&j.Title, in.Title)
	set(&j.Description, in.Description)
	set(&j.Location, in.Location)
	set(&j.Salary, in.Salary)
	set(&j.JobType, in.JobType)
	set(&j.Company, in.Company)
	j.Category = category

	if in.SkillsRequired != nil {
		skills := normalizeSkillList(in.SkillsRequired)
		if len(skills) == 0 {
			return job.Job{}, ErrInvalidInput
		}
		j.SkillsRequired = skills
	}

	if err := u.jobs.Update(ctx, j); err != nil {
		return job.Job{}, mapJobErr(err)
	}
	u.invalidate(ctx)

	return u.Get(ctx, id)
}

func (u *Jobs) Delete(ctx context.Context, posterID, id uuid.UUID) error {
	if _, err := u.owned(ctx, posterID, id); err != nil {
		return err
	}
	if err := u.jobs.Delete(ctx, id); err != nil {
		return mapJobErr(err)
	}
	u.invalidate(ctx)
	return nil
}

func (u *Jobs) owned(ctx context.Context, posterID, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, mapJobErr(err)
	}
	if j.PostedBy != posterID {
		return job.Job{}, ErrNotJobOwner
	}
	return j, nil
}

func (u *Jobs) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateJobs(ctx); err != nil {
		u.logger.Printf("[Cache] invalidate jobs failed: %v", err)
	}
}

func mapJobErr(err error) error {
	switch {
	case errors.Is(err, job.ErrNotFound):
		return ErrJobNotFound
	case errors.Is(err, job.ErrDuplicate):
		return ErrJobDuplicate
	default:
		return ErrInternal
	}
}

func normalizeSkillList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
