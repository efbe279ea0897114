package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const MaxMessageLen = 400

var ErrMessageEmpty = errors.New("message empty")

type ChatMessage struct {
	ID        string `json:"id"`
	UserID    UserID `json:"userId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// NewChatMessage stamps a server-side id and unix-millisecond timestamp.
// Text longer than MaxMessageLen runes is truncated.
func NewChatMessage(from UserID, username, text string, at time.Time) (*ChatMessage, error) {
	if text == "" {
		return nil, ErrMessageEmpty
	}
	return &ChatMessage{
		ID:        uuid.NewString(),
		UserID:    from,
		Username:  username,
		Text:      lo.Substring(text, 0, MaxMessageLen),
		Timestamp: at.UnixMilli(),
	}, nil
}
