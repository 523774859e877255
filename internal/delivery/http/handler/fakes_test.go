package handler

import (
	"context"
	"io"

	"job-board/internal/domain/application"
	"job-board/internal/domain/chat"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/usecase"
	ucauth "job-board/internal/usecase/auth"
	ucuser "job-board/internal/usecase/user"

	"github.com/google/uuid"
)

type fakeAuth struct {
	usr  user.User
	pair usecase.TokenPair
	err  error

	lastRefresh string
}

func (f *fakeAuth) Register(context.Context, ucauth.RegisterInput) (user.User, usecase.TokenPair, error) {
	return f.usr, f.pair, f.err
}

func (f *fakeAuth) Login(context.Context, ucauth.LoginInput) (user.User, usecase.TokenPair, error) {
	return f.usr, f.pair, f.err
}

func (f *fakeAuth) Refresh(_ context.Context, tok string) (usecase.TokenPair, error) {
	f.lastRefresh = tok
	return f.pair, f.err
}

type fakeUsers struct {
	usr user.User
	err error

	lastInput  ucuser.ProfileInput
	uploadName string
	uploaded   string
}

func (f *fakeUsers) CreateProfile(_ context.Context, _ uuid.UUID, in ucuser.ProfileInput) (user.User, error) {
	f.lastInput = in
	return f.usr, f.err
}

func (f *fakeUsers) GetProfile(context.Context, uuid.UUID) (user.User, error) {
	return f.usr, f.err
}

func (f *fakeUsers) UpdateProfile(_ context.Context, _ uuid.UUID, in ucuser.ProfileInput) (user.User, error) {
	f.lastInput = in
	return f.usr, f.err
}

func (f *fakeUsers) UploadResume(_ context.Context, _ uuid.UUID, name string, r io.Reader) (user.User, error) {
	b, _ := io.ReadAll(r)
	f.uploadName = name
	f.uploaded = string(b)
	return f.usr, f.err
}

func (f *fakeUsers) ResumeURL(context.Context, uuid.UUID) (string, error) {
	return "http://files.local" + f.usr.Resume, f.err
}

type fakeJobs struct {
	job  job.Job
	list []job.Job
	err  error

	lastFilter job.Filter
	lastPoster uuid.UUID
	lastUpdate usecase.UpdateJobInput
	deleted    uuid.UUID
}

func (f *fakeJobs) Create(_ context.Context, poster uuid.UUID, in usecase.CreateJobInput) (job.Job, error) {
	f.lastPoster = poster
	if f.err != nil {
		return job.Job{}, f.err
	}
	return job.Job{ID: uuid.New(), Title: in.Title, PostedBy: poster, SkillsRequired: in.SkillsRequired}, nil
}

func (f *fakeJobs) List(_ context.Context, filter job.Filter) ([]job.Job, error) {
	f.lastFilter = filter
	return f.list, f.err
}

func (f *fakeJobs) ListByPoster(_ context.Context, poster uuid.UUID) ([]job.Job, error) {
	f.lastPoster = poster
	return f.list, f.err
}

func (f *fakeJobs) Get(context.Context, uuid.UUID) (job.Job, error) {
	return f.job, f.err
}

func (f *fakeJobs) Update(_ context.Context, poster, _ uuid.UUID, in usecase.UpdateJobInput) (job.Job, error) {
	f.lastPoster = poster
	f.lastUpdate = in
	return f.job, f.err
}

func (f *fakeJobs) Delete(_ context.Context, _ uuid.UUID, id uuid.UUID) error {
	f.deleted = id
	return f.err
}

type fakeRecs struct {
	items []usecase.JobRecommendationItem
	err   error
}

func (f *fakeRecs) GetRecommendations(context.Context, uuid.UUID) ([]usecase.JobRecommendationItem, error) {
	return f.items, f.err
}

type fakeApps struct {
	app  application.Application
	list []application.Application
	err  error

	lastInput  usecase.ApplyInput
	resumeBody string
	lastStatus application.Status
}

func (f *fakeApps) Apply(_ context.Context, applicant, jobID uuid.UUID, in usecase.ApplyInput) (application.Application, error) {
	f.lastInput = in
	if in.Resume != nil {
		b, _ := io.ReadAll(in.Resume)
		f.resumeBody = string(b)
	}
	if f.err != nil {
		return application.Application{}, f.err
	}
	return application.Application{ID: uuid.New(), JobID: jobID, ApplicantID: applicant, Status: application.StatusPending}, nil
}

func (f *fakeApps) ListByJob(context.Context, uuid.UUID, uuid.UUID) ([]application.Application, error) {
	return f.list, f.err
}

func (f *fakeApps) UpdateStatus(_ context.Context, _, _ uuid.UUID, s application.Status) (application.Application, error) {
	f.lastStatus = s
	return f.app, f.err
}

type fakeChat struct {
	history []chat.Message
	err     error

	lastSender   string
	lastReceiver string
	lastOther    string
}

func (f *fakeChat) Send(_ context.Context, sender, receiver, message string) (chat.Message, error) {
	f.lastSender = sender
	f.lastReceiver = receiver
	if f.err != nil {
		return chat.Message{}, f.err
	}
	return chat.Message{ID: uuid.New(), SenderID: sender, ReceiverID: receiver, Message: message}, nil
}

func (f *fakeChat) History(_ context.Context, userID, other string) ([]chat.Message, error) {
	f.lastSender = userID
	f.lastOther = other
	return f.history, f.err
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeConns struct{ clients, online int }

func (c fakeConns) ClientCount() int { return c.clients }
func (c fakeConns) OnlineUsers() int { return c.online }
