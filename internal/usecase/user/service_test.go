package user

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUsers map[uuid.UUID]user.User

func (m memUsers) Create(_ context.Context, u user.User) error {
	m[u.ID] = u
	return nil
}

func (m memUsers) Update(_ context.Context, u user.User) error {
	if _, ok := m[u.ID]; !ok {
		return user.ErrNotFound
	}
	m[u.ID] = u
	return nil
}

func (m memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m memUsers) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (m memUsers) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

type stubStore struct{ err error }

func (s stubStore) Save(_ context.Context, owner, filename string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	_, _ = io.ReadAll(r)
	return "/uploads/" + owner + "-" + filename, nil
}

func strPtr(s string) *string { return &s }

func newFixture(role user.Role) (*Service, memUsers, uuid.UUID) {
	id := uuid.New()
	users := memUsers{id: {ID: id, Name: "Sam", Role: role, PasswordHash: "hash"}}
	return NewService(users, stubStore{}, "http://localhost:5000/"), users, id
}

func TestCreateProfileOnce(t *testing.T) {
	svc, _, id := newFixture(user.RoleJobSeeker)
	ctx := context.Background()

	got, err := svc.CreateProfile(ctx, id, ProfileInput{
		Skills:      []string{"go", " go ", "", "SQL"},
		Preferences: map[string]any{"remote": true},
		Company:     strPtr("ignored for seekers"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "SQL"}, got.Skills)
	assert.Empty(t, got.Company)
	assert.Empty(t, got.PasswordHash)

	_, err = svc.CreateProfile(ctx, id, ProfileInput{Skills: []string{"rust"}})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, users, id := newFixture(user.RoleRecruiter)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, id, ProfileInput{Skills: []string{"go"}, Company: strPtr("Acme")})
	require.NoError(t, err)

	got, err := svc.UpdateProfile(ctx, id, ProfileInput{Name: strPtr("Samantha")})
	require.NoError(t, err)
	assert.Equal(t, "Samantha", got.Name)
	assert.Equal(t, []string{"go"}, got.Skills)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "hash", users[id].PasswordHash, "stored hash is untouched")

	_, err = svc.UpdateProfile(ctx, id, ProfileInput{Name: strPtr(" ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateProfile(ctx, uuid.New(), ProfileInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResumeUploadAndURL(t *testing.T) {
	svc, _, id := newFixture(user.RoleJobSeeker)
	ctx := context.Background()

	_, err := svc.ResumeURL(ctx, id)
	assert.ErrorIs(t, err, ErrResumeNotFound)

	got, err := svc.UploadResume(ctx, id, "cv.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/"+id.String()+"-cv.pdf", got.Resume)

	url, err := svc.ResumeURL(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/"+id.String()+"-cv.pdf", url)

	_, err = svc.ResumeURL(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrResumeNotFound)
}

func TestUploadResumeStoreError(t *testing.T) {
	id := uuid.New()
	boom := errors.New("disk full")
	svc := NewService(memUsers{id: {ID: id}}, stubStore{err: boom}, "")

	_, err := svc.UploadResume(context.Background(), id, "cv.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, boom)
}
