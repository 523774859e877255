package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"job-board/internal/domain/job"
	"job-board/internal/domain/matching"
	"job-board/internal/domain/user"
	"job-board/internal/observability/metrics"

	"github.com/google/uuid"
)

var (
	ErrUserSkillProfileEmpty = errors.New("Update your skills to get recommendations.")
)

type JobRecommendationItem struct {
	job.Job
	MatchScore int `json:"matchScore"`
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]JobRecommendationItem, error)
}

type JobRecommendation struct {
	jobs   job.Repository
	users  user.Repository
	cache  JobCache
	mode   matching.Mode
	ttl    time.Duration
	logger *log.Logger
}

func NewJobRecommendationUsecase(jobs job.Repository, users user.Repository, cache JobCache, mode matching.Mode, ttl time.Duration, logger *log.Logger) *JobRecommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &JobRecommendation{jobs: jobs, users: users, cache: cache, mode: mode, ttl: ttl, logger: logger}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]JobRecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, ErrInternal
	}
	if len(usr.Skills) == 0 {
		return nil, ErrUserSkillProfileEmpty
	}

	key := RecommendationCacheKey(userID.String(), usr.Skills)
	if u.cache != nil {
		var cached []JobRecommendationItem
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			metrics.ObserveRecommendationCache(true)
			return cached, nil
		}
		metrics.ObserveRecommendationCache(false)
	}

	jobs, err := u.jobs.List(ctx, job.Filter{})
	if err != nil {
		return nil, ErrInternal
	}

	res := matching.Recommend(&usr, jobs, u.mode)
	for _, id := range res.Skipped {
		u.logger.Printf("Recommendation skipped job without required skills | job=%s", id)
	}

	out := make([]JobRecommendationItem, 0, len(res.Items))
	for _, it := range res.Items {
		out = append(out, JobRecommendationItem{Job: it.Job, MatchScore: it.MatchScore})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, u.ttl); err != nil {
			u.logger.Printf("[Cache] set recommendations failed key=%s err=%v", key, err)
		}
	}
	return out, nil
}
