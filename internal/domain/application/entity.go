package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("application not found")
	ErrAlreadyApplied   = errors.New("already applied")
	ErrProjectNotOpen   = errors.New("project not open")
	ErrNotApplicationOf = errors.New("application does not belong to freelancer")
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusWithdrawn = "withdrawn"
)

type Application struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	FreelancerID uuid.UUID
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
