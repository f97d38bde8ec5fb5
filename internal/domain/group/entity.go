package group

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("group not found")
	ErrNotMember = errors.New("not a group member")
)

type Group struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	MemberIDs []uuid.UUID
	CreatedAt time.Time
}

func (g Group) HasMember(id uuid.UUID) bool {
	for _, m := range g.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

type Message struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	SenderID  uuid.UUID
	Content   string
	CreatedAt time.Time
}
