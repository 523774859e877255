package dto

type CreateJobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Category       string   `json:"category"`
	Salary         string   `json:"salary"`
	JobType        string   `json:"jobType"`
	Company        string   `json:"company"`
	SkillsRequired []string `json:"skillsRequired"`
}

type UpdateJobRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Location       *string  `json:"location"`
	Category       string   `json:"category"`
	Salary         *string  `json:"salary"`
	JobType        *string  `json:"jobType"`
	Company        *string  `json:"company"`
	SkillsRequired []string `json:"skillsRequired"`
}
