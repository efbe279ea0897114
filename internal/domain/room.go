package domain

import "errors"

var ErrRoomIDEmpty = errors.New("room id empty")

type RoomID string

// Room is an isolated namespace of participants.
// It only exists while at least one participant is in it.
type Room struct {
	ID           RoomID
	Participants map[UserID]*Participant
}

func NewRoom(id RoomID) *Room {
	return &Room{ID: id, Participants: make(map[UserID]*Participant)}
}

func (r *Room) Empty() bool { return len(r.Participants) == 0 }

func NormalizeRoomID(raw string) (RoomID, error) {
	if raw == "" {
		return "", ErrRoomIDEmpty
	}
	return RoomID(raw), nil
}
