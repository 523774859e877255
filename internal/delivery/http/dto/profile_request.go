package dto

type ProfileRequest struct {
	Name        *string        `json:"name"`
	Skills      []string       `json:"skills"`
	Resume      *string        `json:"resume"`
	Preferences map[string]any `json:"preferences"`
	Company     *string        `json:"company"`
}
