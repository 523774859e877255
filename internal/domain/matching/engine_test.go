package matching

import (
	"testing"

	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(title string, skills ...string) job.Job {
	return job.Job{ID: uuid.New(), Title: title, SkillsRequired: skills}
}

func TestRecommend_GoSQLScenario(t *testing.T) {
	u := &user.User{Skills: []string{"go", "sql"}}
	job1 := newJob("job1", "go", "rust")
	job2 := newJob("job2", "sql", "go")
	job3 := newJob("job3", "java")

	for _, mode := range []Mode{ModeSet, ModeMultiset} {
		res := Recommend(u, []job.Job{job1, job2, job3}, mode)

		require.Len(t, res.Items, 2)
		assert.Equal(t, job2.ID, res.Items[0].Job.ID)
		assert.Equal(t, 2, res.Items[0].MatchScore)
		assert.Equal(t, job1.ID, res.Items[1].Job.ID)
		assert.Equal(t, 1, res.Items[1].MatchScore)
		assert.Empty(t, res.Skipped)
	}
}

func TestRecommend_NoSkillsOrNoJobs(t *testing.T) {
	jobs := []job.Job{newJob("a", "go")}

	assert.Empty(t, Recommend(nil, jobs, ModeSet).Items)
	assert.Empty(t, Recommend(&user.User{}, jobs, ModeSet).Items)
	assert.Empty(t, Recommend(&user.User{Skills: []string{}}, jobs, ModeSet).Items)
	assert.Empty(t, Recommend(&user.User{Skills: []string{"go"}}, nil, ModeSet).Items)
	assert.Empty(t, Recommend(&user.User{Skills: []string{"go"}}, []job.Job{}, ModeSet).Items)
}

func TestRecommend_SkipsJobsWithoutRequirements(t *testing.T) {
	u := &user.User{Skills: []string{"go"}}
	bare := job.Job{ID: uuid.New(), Title: "bare"}
	ok := newJob("ok", "go")

	res := Recommend(u, []job.Job{bare, ok}, ModeSet)

	require.Len(t, res.Items, 1)
	assert.Equal(t, ok.ID, res.Items[0].Job.ID)
	assert.Equal(t, []uuid.UUID{bare.ID}, res.Skipped)
}

func TestRecommend_StableAmongEqualScores(t *testing.T) {
	u := &user.User{Skills: []string{"go", "sql", "k8s"}}
	a := newJob("a", "go")
	b := newJob("b", "sql", "k8s")
	c := newJob("c", "k8s")
	d := newJob("d", "go", "sql")

	res := Recommend(u, []job.Job{a, b, c, d}, ModeSet)

	require.Len(t, res.Items, 4)
	got := []uuid.UUID{res.Items[0].Job.ID, res.Items[1].Job.ID, res.Items[2].Job.ID, res.Items[3].Job.ID}
	assert.Equal(t, []uuid.UUID{b.ID, d.ID, a.ID, c.ID}, got)
}

func TestRecommend_SortedAndNoZeroScores(t *testing.T) {
	u := &user.User{Skills: []string{"go", "sql", "docker"}}
	jobs := []job.Job{
		newJob("1", "java"),
		newJob("2", "go"),
		newJob("3", "go", "sql", "docker"),
		newJob("4", "python", "sql"),
		newJob("5", "docker", "go"),
		newJob("6", "c#"),
	}

	res := Recommend(u, jobs, ModeSet)

	require.Len(t, res.Items, 4)
	for i, it := range res.Items {
		assert.Positive(t, it.MatchScore)
		if i > 0 {
			assert.LessOrEqual(t, it.MatchScore, res.Items[i-1].MatchScore)
		}
	}
}

func TestRecommend_DuplicateSkillsByMode(t *testing.T) {
	u := &user.User{Skills: []string{"go", "go"}}
	j := newJob("dup", "go", "go", "rust")

	set := Recommend(u, []job.Job{j}, ModeSet)
	multi := Recommend(u, []job.Job{j}, ModeMultiset)

	require.Len(t, set.Items, 1)
	require.Len(t, multi.Items, 1)
	assert.Equal(t, 1, set.Items[0].MatchScore)
	assert.Equal(t, 2, multi.Items[0].MatchScore)
}

func TestRecommend_ExactStringMatch(t *testing.T) {
	u := &user.User{Skills: []string{"Go"}}
	res := Recommend(u, []job.Job{newJob("lower", "go")}, ModeSet)
	assert.Empty(t, res.Items)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeMultiset, ParseMode("multiset"))
	assert.Equal(t, ModeSet, ParseMode("set"))
	assert.Equal(t, ModeSet, ParseMode(""))
}
