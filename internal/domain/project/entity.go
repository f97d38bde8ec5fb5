package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

// Metadata carries the optional job details a client can attach when
// posting a project. All fields may be empty.
type Metadata struct {
	JobType         string `json:"job_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Payment         string `json:"payment,omitempty"`
	Location        string `json:"location,omitempty"`
	Duration        string `json:"duration,omitempty"`
}

type Project struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Description    string
	RequiredSkills []string
	TeamSize       int
	Metadata       Metadata
	JoinCode       string
	IsOpen         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
