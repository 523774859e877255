package dto

type SendMessageRequest struct {
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
}
