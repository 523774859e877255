package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

var errDBDown = errors.New("db down")

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type memUsers struct {
	mu    sync.Mutex
	items map[uuid.UUID]user.User
}

func newMemUsers(us ...user.User) *memUsers {
	m := &memUsers{items: map[uuid.UUID]user.User{}}
	for _, u := range us {
		m.items[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, u user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.items {
		if x.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.items[u.ID] = u
	return nil
}

func (m *memUsers) Update(_ context.Context, u user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.items[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

type memJobs struct {
	mu    sync.Mutex
	order []uuid.UUID
	items map[uuid.UUID]job.Job
	err   error
	lists int
}

func newMemJobs(js ...job.Job) *memJobs {
	m := &memJobs{items: map[uuid.UUID]job.Job{}}
	for _, j := range js {
		m.order = append(m.order, j.ID)
		m.items[j.ID] = j
	}
	return m
}

func (m *memJobs) Create(_ context.Context, j job.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, x := range m.items {
		if x.Title == j.Title && x.Company == j.Company {
			return job.ErrDuplicate
		}
	}
	j.CreatedAt = time.Now()
	m.order = append(m.order, j.ID)
	m.items[j.ID] = j
	return nil
}

func (m *memJobs) Update(_ context.Context, j job.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[j.ID]; !ok {
		return job.ErrNotFound
	}
	m.items[j.ID] = j
	return nil
}

func (m *memJobs) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.items[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *memJobs) List(_ context.Context, f job.Filter) ([]job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0)
	for _, id := range m.order {
		j, ok := m.items[id]
		if !ok {
			continue
		}
		if f.Category != "" && j.Category != f.Category {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (m *memJobs) ListByPoster(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	all, err := m.List(ctx, job.Filter{})
	if err != nil {
		return nil, err
	}
	out := make([]job.Job, 0)
	for _, j := range all {
		if j.PostedBy == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobs) listCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lists
}

type memApps struct {
	mu    sync.Mutex
	items map[uuid.UUID]application.Application
	users *memUsers
	jobs  *memJobs
}

func newMemApps(users *memUsers, jobs *memJobs) *memApps {
	return &memApps{items: map[uuid.UUID]application.Application{}, users: users, jobs: jobs}
}

func (m *memApps) Create(_ context.Context, a application.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.items {
		if x.JobID == a.JobID && x.ApplicantID == a.ApplicantID {
			return application.ErrAlreadyApplied
		}
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	m.items[a.ID] = a
	return nil
}

func (m *memApps) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	m.mu.Lock()
	a, ok := m.items[id]
	m.mu.Unlock()
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return m.populate(ctx, a), nil
}

func (m *memApps) ExistsForApplicant(_ context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.items {
		if x.JobID == jobID && x.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memApps) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	m.mu.Lock()
	var out []application.Application
	for _, x := range m.items {
		if x.JobID == jobID {
			out = append(out, x)
		}
	}
	m.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	for i := range out {
		out[i] = m.populate(ctx, out[i])
	}
	return out, nil
}

func (m *memApps) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.items[id]
	if !ok {
		return application.ErrNotFound
	}
	a.Status = status
	m.items[id] = a
	return nil
}

func (m *memApps) populate(ctx context.Context, a application.Application) application.Application {
	if u, err := m.users.GetByID(ctx, a.ApplicantID); err == nil {
		a.ApplicantName = u.Name
		a.ApplicantEmail = u.Email
	}
	if j, err := m.jobs.GetByID(ctx, a.JobID); err == nil {
		a.JobTitle = j.Title
		a.JobCompany = j.Company
	}
	return a
}

// memCache stores values as-is; GetJSON copies through a type switch so the
// tests exercise the same shapes the usecases write.
type memCache struct {
	mu          sync.Mutex
	items       map[string]any
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{items: map[string]any{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return false, nil
	}
	switch dst := out.(type) {
	case *[]job.Job:
		*dst = v.([]job.Job)
	case *[]JobRecommendationItem:
		*dst = v.([]JobRecommendationItem)
	default:
		return false, nil
	}
	return true, nil
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memCache) InvalidateJobs(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = map[string]any{}
	c.invalidated++
	return nil
}

func (c *memCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

type notice struct {
	userID string
	event  string
	data   any
}

type fakeNotifier struct {
	mu     sync.Mutex
	online map[string]bool
	sent   []notice
}

func (n *fakeNotifier) NotifyUser(userID, event string, data any) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.online[userID] {
		return false
	}
	n.sent = append(n.sent, notice{userID: userID, event: event, data: data})
	return true
}

type fakeFiles struct {
	saved []string
	err   error
}

func (f *fakeFiles) Save(_ context.Context, owner, filename string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	p := "/uploads/" + owner + "-" + filename
	f.saved = append(f.saved, p)
	return p, nil
}
