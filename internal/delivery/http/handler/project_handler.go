package handler

import (
	"errors"
	"strconv"

	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/domain/project"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("", h.Create)
	r.Get("", h.ListOpen)
	r.Get("/mine", h.ListMine)
	r.Get("/code/:join_code", h.GetByJoinCode)
	r.Get("/:project_id", h.Get)
	r.Put("/:project_id", h.Update)
}

type projectRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	TeamSize       int      `json:"team_size"`
	Metadata       struct {
		JobType         string `json:"job_type"`
		ExperienceLevel string `json:"experience_level"`
		Payment         string `json:"payment"`
		Location        string `json:"location"`
		Duration        string `json:"duration"`
	} `json:"metadata"`
}

func (req projectRequest) toInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:           req.Name,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		TeamSize:       req.TeamSize,
		Metadata: project.Metadata{
			JobType:         req.Metadata.JobType,
			ExperienceLevel: req.Metadata.ExperienceLevel,
			Payment:         req.Metadata.Payment,
			Location:        req.Metadata.Location,
			Duration:        req.Metadata.Duration,
		},
	}
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	ownerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Create(c.Context(), ownerID, req.toInput())
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewProjectResponse(p, true))
}

func (h *ProjectHandler) ListOpen(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 50)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ps, err := h.uc.ListOpen(c.Context(), limit, offset)
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponses(ps, false))
}

func (h *ProjectHandler) ListMine(c fiber.Ctx) error {
	ownerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ps, err := h.uc.ListMine(c.Context(), ownerID)
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponses(ps, true))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)

	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Get(c.Context(), projectID)
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p, p.OwnerID == userID))
}

func (h *ProjectHandler) GetByJoinCode(c fiber.Ctx) error {
	p, err := h.uc.GetByJoinCode(c.Context(), c.Params("join_code"))
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p, false))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	ownerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Update(c.Context(), ownerID, projectID, req.toInput())
	if err != nil {
		return mapProjectUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p, true))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapProjectUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidProject):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotProjectOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
