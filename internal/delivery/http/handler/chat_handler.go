package handler

import (
	"errors"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// RegisterRoutes expects r to be behind the auth middleware.
func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/send", h.Send)
	r.Get("/:userId", h.History)
}

func (h *ChatHandler) Send(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.SendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	msg, err := h.uc.Send(c.Context(), userID.String(), req.Receiver, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingRecipient), errors.Is(err, usecase.ErrEmptyMessage):
			return badRequest(err.Error(), err)
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		default:
			return internalError(err)
		}
	}
	return response.Success(c, fiber.StatusCreated, "Message sent", msg)
}

func (h *ChatHandler) History(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	msgs, err := h.uc.History(c.Context(), userID.String(), c.Params("userId"))
	if err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, msgs)
}
