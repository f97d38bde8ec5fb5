package dto

import (
	"time"

	"crewmatch/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectMetadataResponse struct {
	JobType         string `json:"job_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Payment         string `json:"payment,omitempty"`
	Location        string `json:"location,omitempty"`
	Duration        string `json:"duration,omitempty"`
}

type ProjectResponse struct {
	ID             uuid.UUID               `json:"id"`
	OwnerID        uuid.UUID               `json:"owner_id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	RequiredSkills []string                `json:"required_skills"`
	TeamSize       int                     `json:"team_size"`
	Metadata       ProjectMetadataResponse `json:"metadata"`
	JoinCode       string                  `json:"join_code,omitempty"`
	IsOpen         bool                    `json:"is_open"`
	CreatedAt      time.Time               `json:"created_at"`
}

// NewProjectResponse renders a project. The join code is only included
// for the owner.
func NewProjectResponse(p project.Project, includeJoinCode bool) ProjectResponse {
	out := ProjectResponse{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Name:           p.Name,
		Description:    p.Description,
		RequiredSkills: p.RequiredSkills,
		TeamSize:       p.TeamSize,
		Metadata: ProjectMetadataResponse{
			JobType:         p.Metadata.JobType,
			ExperienceLevel: p.Metadata.ExperienceLevel,
			Payment:         p.Metadata.Payment,
			Location:        p.Metadata.Location,
			Duration:        p.Metadata.Duration,
		},
		IsOpen:    p.IsOpen,
		CreatedAt: p.CreatedAt,
	}
	if includeJoinCode {
		out.JoinCode = p.JoinCode
	}
	if out.RequiredSkills == nil {
		out.RequiredSkills = []string{}
	}
	return out
}

func NewProjectResponses(ps []project.Project, includeJoinCode bool) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProjectResponse(p, includeJoinCode))
	}
	return out
}
