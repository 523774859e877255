package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	Salary         string    `json:"salary"`
	JobType        string    `json:"jobType"`
	Company        string    `json:"company"`
	SkillsRequired []string  `json:"skillsRequired"`
	PostedBy       uuid.UUID `json:"postedBy"`
	PostedByName   string    `json:"postedByName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Filter struct {
	Category string
	Location string
	JobType  string
}

func (f Filter) Empty() bool {
	return f.Category == "" && f.Location == "" && f.JobType == ""
}
