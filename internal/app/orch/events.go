package orch

import "github.com/dkeye/Presence/internal/domain"

// Outbound payloads.

type RoomUsers struct {
	Users []domain.Participant `json:"users"`
}

type UserJoined struct {
	UserID   domain.UserID `json:"userId"`
	Username string        `json:"username"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
}

type UserMoved struct {
	UserID domain.UserID `json:"userId"`
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
}

type ChatBroadcast struct {
	Message *domain.ChatMessage `json:"message"`
}

type MediaToggled struct {
	UserID  domain.UserID    `json:"userId"`
	Type    domain.MediaKind `json:"type"`
	Enabled bool             `json:"enabled"`
}

type UserLeft struct {
	UserID domain.UserID `json:"userId"`
}
