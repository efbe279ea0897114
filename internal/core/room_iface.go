package core

import "github.com/dkeye/Presence/internal/domain"

type RoomInfo struct {
	ID           domain.RoomID `json:"id"`
	Participants int           `json:"participants"`
}

// RoomStore owns every room and all participant state.
// Operations on a missing room or participant are silent no-ops.
type RoomStore interface {
	GetOrCreateRoom(id domain.RoomID) RoomInfo
	AddParticipant(room domain.RoomID, id domain.UserID, name string) domain.Participant
	RemoveParticipant(room domain.RoomID, id domain.UserID)
	MoveParticipant(room domain.RoomID, id domain.UserID, x, y float64) (domain.Participant, bool)
	SetMedia(room domain.RoomID, id domain.UserID, kind domain.MediaKind, enabled bool) (domain.Participant, bool)
	ListParticipants(room domain.RoomID) []domain.Participant
	Participant(room domain.RoomID, id domain.UserID) (domain.Participant, bool)
	Rooms() []RoomInfo
}
