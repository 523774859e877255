package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"
	ucuser "job-board/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterRoutes expects r to be behind the auth middleware.
func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/profile", h.CreateProfile)
	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
	r.Post("/upload-resume", h.UploadResume)
	r.Get("/resume/:userId", h.GetResume)
}

func (h *UserHandler) CreateProfile(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	usr, err := h.uc.CreateProfile(c.Context(), userID, profileInput(req))
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Profile created successfully", dto.NewUserResponse(usr))
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, profileInput(req))
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully", dto.NewUserResponse(usr))
}

func (h *UserHandler) UploadResume(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		return badRequest("No file uploaded", err)
	}
	f, err := fh.Open()
	if err != nil {
		return internalError(err)
	}
	defer f.Close()

	usr, err := h.uc.UploadResume(c.Context(), userID, fh.Filename, f)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Resume uploaded successfully", fiber.Map{"resume": usr.Resume})
}

func (h *UserHandler) GetResume(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId", "Invalid user ID")
	if err != nil {
		return err
	}

	url, err := h.uc.ResumeURL(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"resume": url})
}

func profileInput(req dto.ProfileRequest) ucuser.ProfileInput {
	return ucuser.ProfileInput{
		Name:        req.Name,
		Skills:      req.Skills,
		Resume:      req.Resume,
		Preferences: req.Preferences,
		Company:     req.Company,
	}
}
