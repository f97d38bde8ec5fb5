package handler

import (
	"errors"

	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"
	"crewmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GroupHandler struct {
	groups usecase.GroupUsecase
	chat   usecase.ChatUsecase
	wsh    *ws.Handler
}

func NewGroupHandler(groups usecase.GroupUsecase, chat usecase.ChatUsecase, wsh *ws.Handler) *GroupHandler {
	return &GroupHandler{groups: groups, chat: chat, wsh: wsh}
}

func (h *GroupHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("", h.FormTeam)
	r.Get("", h.ListMine)
	r.Get("/:group_id", h.Get)
	r.Get("/:group_id/tasks", h.ListTasks)
	r.Put("/:group_id/tasks/:task_id/complete", h.CompleteTask)
	r.Get("/:group_id/messages", h.History)
	r.Post("/:group_id/messages", h.Send)
	r.Get("/:group_id/ws", h.Subscribe)
}

type formTeamRequest struct {
	ProjectID uuid.UUID   `json:"project_id"`
	Name      string      `json:"name"`
	MemberIDs []uuid.UUID `json:"member_ids"`
}

type formTeamResponse struct {
	Group dto.GroupResponse  `json:"group"`
	Tasks []dto.TaskResponse `json:"tasks"`
}

func (h *GroupHandler) FormTeam(c fiber.Ctx) error {
	ownerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req formTeamRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	g, assignments, err := h.groups.FormTeam(c.Context(), ownerID, usecase.FormTeamInput{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		return mapGroupUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, formTeamResponse{
		Group: dto.NewGroupResponse(g),
		Tasks: dto.NewTaskResponses(assignments),
	})
}

func (h *GroupHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	gs, err := h.groups.ListMine(c.Context(), userID)
	if err != nil {
		return mapGroupUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGroupResponses(gs))
}

func (h *GroupHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	g, err := h.groups.Get(c.Context(), userID, groupID)
	if err != nil {
		return mapGroupUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGroupResponse(g))
}

func (h *GroupHandler) ListTasks(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	as, err := h.groups.ListTasks(c.Context(), userID, groupID)
	if err != nil {
		return mapGroupUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTaskResponses(as))
}

func (h *GroupHandler) CompleteTask(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.groups.CompleteTask(c.Context(), userID, groupID, taskID); err != nil {
		return mapGroupUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (h *GroupHandler) Send(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.chat.Send(c.Context(), userID, groupID, req.Content)
	if err != nil {
		return mapGroupUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewMessageResponse(m))
}

func (h *GroupHandler) History(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit, err := parseQueryInt(c, "limit", 100)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ms, err := h.chat.History(c.Context(), userID, groupID, limit)
	if err != nil {
		return mapGroupUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMessageResponses(ms))
}

// Subscribe upgrades the connection to a websocket on the group's room.
// Membership is verified before the upgrade so outsiders never reach the hub.
func (h *GroupHandler) Subscribe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if _, err := h.groups.Get(c.Context(), userID, groupID); err != nil {
		return mapGroupUsecaseError(err)
	}
	return h.wsh.HandleGroupWS(c, groupID.String())
}

func mapGroupUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrGroupNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Group not found", nil, err)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Task not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrNotGroupMember):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrNotProjectOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidTeam):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrProjectClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Project is closed", nil, err)
	case errors.Is(err, usecase.ErrEmptyMessage):
		return middleware.NewAppError(fiber.StatusBadRequest, "Message is empty", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
