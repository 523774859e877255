package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/application"
	"job-board/internal/domain/user"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterRoutes expects r to be behind the auth middleware.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	recruiter := string(user.RoleRecruiter)

	r.Post("/:id/apply", h.Apply)
	r.Get("/:jobId/fetchapplications", middleware.RequireRole(recruiter, h.ListByJob))
	r.Patch("/:id/status", middleware.RequireRole(recruiter, h.UpdateStatus))
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "id", "Invalid Job ID")
	if err != nil {
		return err
	}

	in := usecase.ApplyInput{CoverLetter: c.FormValue("coverLetter")}
	if fh, ferr := c.FormFile("resume"); ferr == nil {
		f, err := fh.Open()
		if err != nil {
			return internalError(err)
		}
		defer f.Close()
		in.ResumeName = fh.Filename
		in.Resume = f
	}

	a, err := h.uc.Apply(c.Context(), userID, jobID, in)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted successfully!", a)
}

func (h *ApplicationHandler) ListByJob(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "jobId", "Invalid Job ID")
	if err != nil {
		return err
	}

	apps, err := h.uc.ListByJob(c.Context(), userID, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id", "Invalid application ID")
	if err != nil {
		return err
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	a, err := h.uc.UpdateStatus(c.Context(), userID, id, application.Status(req.Status))
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application status updated", a)
}
