package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"job-board/internal/domain/job"
)

// JobCache is satisfied by cache.Redis. Keys built below must keep the
// "jobs:all" and "recs:" prefixes that InvalidateJobs clears.
type JobCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateJobs(ctx context.Context) error
}

func normalizeFilterValue(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func JobListCacheKey(f job.Filter) string {
	return "jobs:all:c=" + normalizeFilterValue(f.Category) +
		":l=" + normalizeFilterValue(f.Location) +
		":t=" + normalizeFilterValue(f.JobType)
}

// RecommendationCacheKey changes whenever the user's skill set does, so an
// edited profile never reads stale recommendations.
func RecommendationCacheKey(userID string, skills []string) string {
	sorted := append([]string(nil), skills...)
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "\x00")))
	return "recs:" + userID + ":" + hex.EncodeToString(sum[:8])
}
