package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrResumeRequired          = errors.New("Resume file is required.")
	ErrAlreadyApplied          = errors.New("You have already applied for this job.")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// EventApplicationReceived is pushed to an online recruiter when someone
// applies to one of their jobs.
const EventApplicationReceived = "applicationReceived"

// Notifier delivers a real-time event to a user if they are connected.
type Notifier interface {
	NotifyUser(userID, event string, data any) bool
}

type FileStore interface {
	Save(ctx context.Context, owner, filename string, r io.Reader) (string, error)
}

type ApplyInput struct {
	ResumeName  string
	Resume      io.Reader
	CoverLetter string
}

type ApplicationNotice struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	JobID         uuid.UUID `json:"jobId"`
	JobTitle      string    `json:"jobTitle"`
	Company       string    `json:"company"`
	ApplicantID   uuid.UUID `json:"applicantId"`
	ApplicantName string    `json:"applicantName"`
	AppliedAt     time.Time `json:"appliedAt"`
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID, jobID uuid.UUID, in ApplyInput) (application.Application, error)
	ListByJob(ctx context.Context, recruiterID, jobID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, recruiterID, applicationID uuid.UUID, status application.Status) (application.Application, error)
}

type Applications struct {
	apps     application.Repository
	jobs     job.Repository
	users    user.Repository
	files    FileStore
	notifier Notifier
	logger   *log.Logger
}

func NewApplicationUsecase(apps application.Repository, jobs job.Repository, users user.Repository, files FileStore, notifier Notifier, logger *log.Logger) *Applications {
	if logger == nil {
		logger = log.Default()
	}
	return &Applications{apps: apps, jobs: jobs, users: users, files: files, notifier: notifier, logger: logger}
}

func (u *Applications) Apply(ctx context.Context, applicantID, jobID uuid.UUID, in ApplyInput) (application.Application, error) {
	if in.Resume == nil || strings.TrimSpace(in.ResumeName) == "" {
		return application.Application{}, ErrResumeRequired
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return application.Application{}, mapJobErr(err)
	}

	exists, err := u.apps.ExistsForApplicant(ctx, jobID, applicantID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrAlreadyApplied
	}

	path, err := u.files.Save(ctx, applicantID.String(), in.ResumeName, in.Resume)
	if err != nil {
		return application.Application{}, err
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Resume:      path,
		CoverLetter: strings.TrimSpace(in.CoverLetter),
		Status:      application.StatusPending,
	}
	if err := u.apps.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrAlreadyApplied) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	created, err := u.apps.GetByID(ctx, a.ID)
	if err != nil {
		return application.Application{}, ErrInternal
	}

	u.notifyRecruiter(j, created)
	return created, nil
}

func (u *Applications) ListByJob(ctx context.Context, recruiterID, jobID uuid.UUID) ([]application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapJobErr(err)
	}
	if j.PostedBy != recruiterID {
		return nil, ErrNotJobOwner
	}

	apps, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, recruiterID, applicationID uuid.UUID, status application.Status) (application.Application, error) {
	if !status.Valid() {
		return application.Application{}, ErrInvalidInput
	}

	a, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}

	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return application.Application{}, mapJobErr(err)
	}
	if j.PostedBy != recruiterID {
		return application.Application{}, ErrNotJobOwner
	}

	if !a.Status.CanTransition(status) {
		return application.Application{}, ErrInvalidStatusTransition
	}

	if err := u.apps.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}

	updated, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	return updated, nil
}

func (u *Applications) notifyRecruiter(j job.Job, a application.Application) {
	if u.notifier == nil {
		return
	}
	notice := ApplicationNotice{
		ApplicationID: a.ID,
		JobID:         j.ID,
		JobTitle:      j.Title,
		Company:       j.Company,
		ApplicantID:   a.ApplicantID,
		ApplicantName: a.ApplicantName,
		AppliedAt:     a.CreatedAt,
	}
	if u.notifier.NotifyUser(j.PostedBy.String(), EventApplicationReceived, notice) {
		u.logger.Printf("Application notice delivered | recruiter=%s job=%s", j.PostedBy, j.ID)
	}
}
