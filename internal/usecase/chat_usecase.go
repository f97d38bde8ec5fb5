package usecase

import (
	"context"
	"errors"
	"strings"

	"crewmatch/internal/domain/group"
	"crewmatch/internal/repository"
	"crewmatch/internal/ws"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("empty message")

const maxMessageLength = 2000

type ChatUsecase interface {
	Send(ctx context.Context, senderID, groupID uuid.UUID, content string) (group.Message, error)
	History(ctx context.Context, userID, groupID uuid.UUID, limit int) ([]group.Message, error)
}

type ChatService struct {
	messages repository.MessageRepository
	groups   GroupUsecase
}

func NewChatUsecase(messages repository.MessageRepository, groups GroupUsecase) *ChatService {
	return &ChatService{messages: messages, groups: groups}
}

func (u *ChatService) Send(ctx context.Context, senderID, groupID uuid.UUID, content string) (group.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return group.Message{}, ErrEmptyMessage
	}
	if runes := []rune(content); len(runes) > maxMessageLength {
		content = string(runes[:maxMessageLength])
	}

	// Membership check; only members may post.
	if _, err := u.groups.Get(ctx, senderID, groupID); err != nil {
		return group.Message{}, err
	}

	m := group.Message{
		ID:       uuid.New(),
		GroupID:  groupID,
		SenderID: senderID,
		Content:  content,
	}
	if err := u.messages.Create(ctx, m); err != nil {
		return group.Message{}, ErrInternal
	}

	ws.NotifyNewMessage(m.GroupID, m.ID, m.SenderID, m.Content)
	return m, nil
}

func (u *ChatService) History(ctx context.Context, userID, groupID uuid.UUID, limit int) ([]group.Message, error) {
	if _, err := u.groups.Get(ctx, userID, groupID); err != nil {
		return nil, err
	}

	out, err := u.messages.ListByGroup(ctx, groupID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
