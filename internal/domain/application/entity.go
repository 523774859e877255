package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// CanTransition allows pending -> reviewed -> accepted|rejected, and a direct
// decision from pending. Decided applications are final.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusReviewed || to == StatusAccepted || to == StatusRejected
	case StatusReviewed:
		return to == StatusAccepted || to == StatusRejected
	default:
		return false
	}
}

type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job"`
	ApplicantID uuid.UUID `json:"applicant"`
	Resume      string    `json:"resume"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	ApplicantName  string `json:"applicantName,omitempty"`
	ApplicantEmail string `json:"applicantEmail,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	JobCompany     string `json:"jobCompany,omitempty"`
}
