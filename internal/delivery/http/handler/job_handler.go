package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	jobs usecase.JobUsecase
	recs usecase.JobRecommendationUsecase
}

func NewJobHandler(jobs usecase.JobUsecase, recs usecase.JobRecommendationUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, recs: recs}
}

// RegisterRoutes mounts public listing routes and wraps the rest with auth.
// Fixed paths are registered before /:id.
func (h *JobHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil || auth == nil {
		return
	}
	recruiter := func(next fiber.Handler) fiber.Handler {
		return auth.Wrap(middleware.RequireRole(string(user.RoleRecruiter), next))
	}

	r.Post("/create", recruiter(h.Create))
	r.Get("/all", h.List)
	r.Get("/recruiter", recruiter(h.ListMine))
	r.Get("/recommendations", auth.Wrap(h.Recommendations))
	r.Get("/:id", h.Get)
	r.Put("/:id", recruiter(h.Update))
	r.Delete("/:id", recruiter(h.Delete))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	j, err := h.jobs.Create(c.Context(), userID, usecase.CreateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Category:       req.Category,
		Salary:         req.Salary,
		JobType:        req.JobType,
		Company:        req.Company,
		SkillsRequired: req.SkillsRequired,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created successfully!", j)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.jobs.List(c.Context(), job.Filter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	jobs, err := h.jobs.ListByPoster(c.Context(), userID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobHandler) Recommendations(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	items, err := h.recs.GetRecommendations(c.Context(), userID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "Invalid Job ID")
	if err != nil {
		return err
	}
	j, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id", "Invalid Job ID")
	if err != nil {
		return err
	}
	var req dto.UpdateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if req.Category == "" {
		return badRequest("Category is required", nil)
	}

	j, err := h.jobs.Update(c.Context(), userID, id, usecase.UpdateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Category:       req.Category,
		Salary:         req.Salary,
		JobType:        req.JobType,
		Company:        req.Company,
		SkillsRequired: req.SkillsRequired,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated successfully", j)
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id", "Invalid Job ID")
	if err != nil {
		return err
	}
	if err := h.jobs.Delete(c.Context(), userID, id); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted successfully", nil)
}
