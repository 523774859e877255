package usecase

import (
	"context"
	"testing"
	"time"

	"job-board/internal/domain/job"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobInput() CreateJobInput {
	return CreateJobInput{
		Title:          "Backend Engineer",
		Description:    "Build APIs",
		Location:       "Remote",
		Category:       "IT",
		Salary:         "100k",
		JobType:        "Full-time",
		Company:        "Acme",
		SkillsRequired: []string{"go", " sql ", ""},
	}
}

func TestJobs_CreateValidatesAndInvalidates(t *testing.T) {
	repo := newMemJobs()
	cache := newMemCache()
	uc := NewJobUsecase(repo, cache, time.Minute, quietLogger())
	ctx := context.Background()
	poster := uuid.New()

	in := validJobInput()
	in.Title = "  "
	_, err := uc.Create(ctx, poster, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = validJobInput()
	in.SkillsRequired = []string{" "}
	_, err = uc.Create(ctx, poster, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err := uc.Create(ctx, poster, validJobInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, created.SkillsRequired)
	assert.Equal(t, poster, created.PostedBy)
	assert.Equal(t, 1, cache.invalidated)

	_, err = uc.Create(ctx, poster, validJobInput())
	assert.ErrorIs(t, err, ErrJobDuplicate)
}

func TestJobs_ListIsCachedUntilMutation(t *testing.T) {
	repo := newMemJobs()
	cache := newMemCache()
	uc := NewJobUsecase(repo, cache, time.Minute, quietLogger())
	ctx := context.Background()
	poster := uuid.New()

	_, err := uc.Create(ctx, poster, validJobInput())
	require.NoError(t, err)

	first, err := uc.List(ctx, job.Filter{})
	require.NoError(t, err)
	second, err := uc.List(ctx, job.Filter{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls())

	in := validJobInput()
	in.Title = "Frontend Engineer"
	_, err = uc.Create(ctx, poster, in)
	require.NoError(t, err)

	third, err := uc.List(ctx, job.Filter{})
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, repo.listCalls())
}

func TestJobs_UpdateAndDeleteRequireOwner(t *testing.T) {
	repo := newMemJobs()
	uc := NewJobUsecase(repo, nil, 0, quietLogger())
	ctx := context.Background()
	owner, other := uuid.New(), uuid.New()

	created, err := uc.Create(ctx, owner, validJobInput())
	require.NoError(t, err)

	title := "Staff Engineer"
	_, err = uc.Update(ctx, other, created.ID, UpdateJobInput{Category: "IT", Title: &title})
	assert.ErrorIs(t, err, ErrNotJobOwner)

	_, err = uc.Update(ctx, owner, created.ID, UpdateJobInput{Title: &title})
	assert.ErrorIs(t, err, ErrInvalidInput, "category is mandatory")

	_, err = uc.Update(ctx, owner, created.ID, UpdateJobInput{Category: "IT", SkillsRequired: []string{}})
	assert.ErrorIs(t, err, ErrInvalidInput, "skills must stay non-empty")

	updated, err := uc.Update(ctx, owner, created.ID, UpdateJobInput{Category: "Engineering", Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, "Engineering", updated.Category)
	assert.Equal(t, "Acme", updated.Company)

	assert.ErrorIs(t, uc.Delete(ctx, other, created.ID), ErrNotJobOwner)
	require.NoError(t, uc.Delete(ctx, owner, created.ID))
	_, err = uc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobs_ListByPoster(t *testing.T) {
	repo := newMemJobs()
	uc := NewJobUsecase(repo, nil, 0, quietLogger())
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	_, err := uc.Create(ctx, a, validJobInput())
	require.NoError(t, err)
	in := validJobInput()
	in.Company = "Other"
	_, err = uc.Create(ctx, b, in)
	require.NoError(t, err)

	mine, err := uc.ListByPoster(ctx, a)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Acme", mine[0].Company)
}

func TestJobCacheKeys(t *testing.T) {
	assert.Equal(t,
		JobListCacheKey(job.Filter{Category: "IT", Location: " Remote "}),
		JobListCacheKey(job.Filter{Category: "it", Location: "remote"}),
	)
	assert.NotEqual(t, JobListCacheKey(job.Filter{Category: "x"}), JobListCacheKey(job.Filter{Location: "x"}))

	k := RecommendationCacheKey("u1", []string{"go", "sql"})
	assert.Equal(t, k, RecommendationCacheKey("u1", []string{"sql", "go"}))
	assert.NotEqual(t, k, RecommendationCacheKey("u1", []string{"go"}))
	assert.Contains(t, k, "recs:u1:")
}
