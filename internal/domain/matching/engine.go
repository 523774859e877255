package matching

import (
	"sort"

	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type Mode int

const (
	// ModeSet counts each distinct required skill once.
	ModeSet Mode = iota
	// ModeMultiset counts repeated required skills every time they appear.
	ModeMultiset
)

func ParseMode(s string) Mode {
	if s == "multiset" {
		return ModeMultiset
	}
	return ModeSet
}

type Recommendation struct {
	Job        job.Job
	MatchScore int
}

type Result struct {
	Items []Recommendation
	// Skipped lists jobs that carry no required skills at all.
	Skipped []uuid.UUID
}

// Recommend ranks jobs by how many of their required skills the user has.
// Jobs without overlap are dropped; ties keep their input order.
func Recommend(u *user.User, jobs []job.Job, mode Mode) Result {
	if u == nil || len(u.Skills) == 0 || jobs == nil {
		return Result{}
	}

	have := make(map[string]struct{}, len(u.Skills))
	for _, s := range u.Skills {
		have[s] = struct{}{}
	}

	out := make([]Recommendation, 0, len(jobs))
	var skipped []uuid.UUID
	for _, j := range jobs {
		if len(j.SkillsRequired) == 0 {
			skipped = append(skipped, j.ID)
			continue
		}

		score := Score(have, j.SkillsRequired, mode)
		if score == 0 {
			continue
		}
		out = append(out, Recommendation{Job: j, MatchScore: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	return Result{Items: out, Skipped: skipped}
}

func Score(have map[string]struct{}, required []string, mode Mode) int {
	score := 0
	var seen map[string]struct{}
	if mode == ModeSet {
		seen = make(map[string]struct{}, len(required))
	}
	for _, s := range required {
		if _, ok := have[s]; !ok {
			continue
		}
		if seen != nil {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
		}
		score++
	}
	return score
}
