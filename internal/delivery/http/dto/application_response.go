package dto

import (
	"time"

	"crewmatch/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	FreelancerID uuid.UUID `json:"freelancer_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		ProjectID:    a.ProjectID,
		FreelancerID: a.FreelancerID,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}

func NewApplicationResponses(as []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
