package dto

import (
	"time"

	"crewmatch/internal/domain/group"
	"crewmatch/internal/domain/tasks"

	"github.com/google/uuid"
)

type GroupResponse struct {
	ID        uuid.UUID   `json:"id"`
	ProjectID uuid.UUID   `json:"project_id"`
	Name      string      `json:"name"`
	MemberIDs []uuid.UUID `json:"member_ids"`
	CreatedAt time.Time   `json:"created_at"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	GroupID     uuid.UUID  `json:"group_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	Completed   bool       `json:"completed"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewGroupResponse(g group.Group) GroupResponse {
	return GroupResponse{
		ID:        g.ID,
		ProjectID: g.ProjectID,
		Name:      g.Name,
		MemberIDs: g.MemberIDs,
		CreatedAt: g.CreatedAt,
	}
}

func NewGroupResponses(gs []group.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(gs))
	for _, g := range gs {
		out = append(out, NewGroupResponse(g))
	}
	return out
}

func NewTaskResponses(as []tasks.Assignment) []TaskResponse {
	out := make([]TaskResponse, 0, len(as))
	for _, a := range as {
		out = append(out, TaskResponse{
			ID:          a.ID,
			GroupID:     a.GroupID,
			Title:       a.Title,
			Description: a.Description,
			AssignedTo:  a.AssignedTo,
			Completed:   a.Completed,
		})
	}
	return out
}

func NewMessageResponse(m group.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		GroupID:   m.GroupID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func NewMessageResponses(ms []group.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewMessageResponse(m))
	}
	return out
}
