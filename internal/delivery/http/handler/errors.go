package handler

import (
	"errors"

	"job-board/internal/delivery/http/middleware"
	"job-board/internal/infrastructure/storage"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"
	ucauth "job-board/internal/usecase/auth"
	ucuser "job-board/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func internalError(err error) error {
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}

func badRequest(msg string, err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, err)
}

func parseIDParam(c fiber.Ctx, name, msg string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, badRequest(msg, err)
	}
	return id, nil
}

func mapAuthUsecaseError(err error) error {
	var fe *ucauth.FieldError
	switch {
	case errors.As(err, &fe):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fiber.Map{fe.Field: fe.Reason}, err)
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "User already exists", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return badRequest("Bad request", err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return internalError(err)
	}
}

func mapUserUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucuser.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucuser.ErrProfileExists):
		return badRequest("Profile already exists", err)
	case errors.Is(err, ucuser.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, ucuser.ErrInvalidInput):
		return badRequest("Bad request", err)
	default:
		return mapUploadError(err)
	}
}

func mapUploadError(err error) error {
	switch {
	case errors.Is(err, storage.ErrFileType):
		return badRequest("Resume must be a pdf, doc, docx or txt file", err)
	case errors.Is(err, storage.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "Resume file is too large", nil, err)
	case errors.Is(err, storage.ErrEmptyFile):
		return badRequest("Resume file is empty", err)
	default:
		return internalError(err)
	}
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest("All fields including skillsRequired are required", err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrJobDuplicate):
		return middleware.NewAppError(fiber.StatusConflict, "A job with the same title and company already exists!", nil, err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "You are not authorized to modify this job", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrUserSkillProfileEmpty):
		return badRequest(err.Error(), err)
	default:
		return internalError(err)
	}
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrResumeRequired):
		return badRequest(err.Error(), err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Invalid status transition", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest("Status must be reviewed, accepted or rejected", err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized to manage applications for this job", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return mapUploadError(err)
	}
}
