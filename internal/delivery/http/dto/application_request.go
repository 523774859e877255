package dto

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}
