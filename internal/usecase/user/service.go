package user

import (
	"context"
	"errors"
	"io"
	"strings"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrProfileExists  = errors.New("profile already exists")
	ErrResumeNotFound = errors.New("resume not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")
)

// ResumeStore persists uploaded files and returns their public path.
type ResumeStore interface {
	Save(ctx context.Context, owner, filename string, r io.Reader) (string, error)
}

// ProfileInput carries optional profile fields. Nil means "leave unchanged".
type ProfileInput struct {
	Name        *string
	Skills      []string
	Resume      *string
	Preferences map[string]any
	Company     *string
}

type Service struct {
	users   user.Repository
	resumes ResumeStore
	baseURL string
}

func NewService(users user.Repository, resumes ResumeStore, publicBaseURL string) *Service {
	return &Service{users: users, resumes: resumes, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

// CreateProfile fills skills, resume, preferences and company once.
func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	if usr.HasProfile() {
		return user.User{}, ErrProfileExists
	}

	usr.Skills = NormalizeSkills(in.Skills)
	if in.Resume != nil {
		usr.Resume = strings.TrimSpace(*in.Resume)
	}
	if in.Preferences != nil {
		usr.Preferences = in.Preferences
	}
	if usr.IsRecruiter() && in.Company != nil {
		usr.Company = strings.TrimSpace(*in.Company)
	}

	return s.save(ctx, usr)
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	return sanitizeUser(usr), nil
}

// UpdateProfile applies the non-empty fields of in. Company is ignored for
// job seekers.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Name = name
	}
	if in.Skills != nil {
		usr.Skills = NormalizeSkills(in.Skills)
	}
	if in.Resume != nil && strings.TrimSpace(*in.Resume) != "" {
		usr.Resume = strings.TrimSpace(*in.Resume)
	}
	if in.Preferences != nil {
		usr.Preferences = in.Preferences
	}
	if usr.IsRecruiter() && in.Company != nil && strings.TrimSpace(*in.Company) != "" {
		usr.Company = strings.TrimSpace(*in.Company)
	}

	return s.save(ctx, usr)
}

func (s *Service) UploadResume(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	path, err := s.resumes.Save(ctx, userID.String(), filename, r)
	if err != nil {
		return user.User{}, err
	}
	usr.Resume = path

	return s.save(ctx, usr)
}

// ResumeURL returns an absolute URL when a public base URL is configured.
func (s *Service) ResumeURL(ctx context.Context, userID uuid.UUID) (string, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrResumeNotFound
		}
		return "", ErrInternal
	}
	if usr.Resume == "" {
		return "", ErrResumeNotFound
	}
	if strings.HasPrefix(usr.Resume, "http://") || strings.HasPrefix(usr.Resume, "https://") {
		return usr.Resume, nil
	}
	return s.baseURL + usr.Resume, nil
}

// NormalizeSkills trims entries and drops blanks and exact duplicates,
// keeping first-seen order. Case is preserved since matching is exact.
func NormalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (s *Service) save(ctx context.Context, usr user.User) (user.User, error) {
	if err := s.users.Update(ctx, usr); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	updated, err := s.load(ctx, usr.ID)
	if err != nil {
		return user.User{}, err
	}
	return sanitizeUser(updated), nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
