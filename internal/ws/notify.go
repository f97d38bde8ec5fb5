package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	EventTeamFormed = "team_formed"
	EventNewMessage = "new_message"
)

type TeamFormedEvent struct {
	Type      string      `json:"type"`
	GroupID   uuid.UUID   `json:"group_id"`
	ProjectID uuid.UUID   `json:"project_id"`
	MemberIDs []uuid.UUID `json:"member_ids"`
	Timestamp string      `json:"timestamp"`
}

type NewMessageEvent struct {
	Type      string    `json:"type"`
	GroupID   uuid.UUID `json:"group_id"`
	MessageID uuid.UUID `json:"message_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	Timestamp string    `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyTeamFormed(groupID, projectID uuid.UUID, memberIDs []uuid.UUID) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := TeamFormedEvent{
		Type:      EventTeamFormed,
		GroupID:   groupID,
		ProjectID: projectID,
		MemberIDs: memberIDs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(groupID.String(), b)
}

func NotifyNewMessage(groupID, messageID, senderID uuid.UUID, content string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := NewMessageEvent{
		Type:      EventNewMessage,
		GroupID:   groupID,
		MessageID: messageID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(groupID.String(), b)
}
