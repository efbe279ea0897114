package app

import (
	"math/rand/v2"
	"sync"

	"github.com/dkeye/Presence/internal/core"
	"github.com/dkeye/Presence/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// RoomStore is a threadsafe in-memory registry of rooms.
// A room exists only while it has participants.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*domain.Room
}

var _ core.RoomStore = (*RoomStore)(nil)

func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[domain.RoomID]*domain.Room)}
}

func (s *RoomStore) GetOrCreateRoom(id domain.RoomID) core.RoomInfo {
	s.mu.RLock()
	room, ok := s.rooms[id]
	if ok {
		info := roomInfo(room)
		s.mu.RUnlock()
		return info
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return roomInfo(s.getOrCreateLocked(id))
}

func (s *RoomStore) getOrCreateLocked(id domain.RoomID) *domain.Room {
	if room, ok := s.rooms[id]; ok {
		return room
	}
	room := domain.NewRoom(id)
	s.rooms[id] = room
	log.Info().Str("module", "app.store").Str("room", string(id)).Msg("room created")
	return room
}

func (s *RoomStore) AddParticipant(roomID domain.RoomID, id domain.UserID, name string) domain.Participant {
	x := float64(domain.SpawnMinX + rand.IntN(domain.SpawnSpanX))
	y := float64(domain.SpawnMinY + rand.IntN(domain.SpawnSpanY))
	p := domain.NewParticipant(id, name, x, y)

	s.mu.Lock()
	defer s.mu.Unlock()
	room := s.getOrCreateLocked(roomID)
	if _, ok := room.Participants[id]; ok {
		log.Warn().Str("module", "app.store").Str("room", string(roomID)).Str("user", string(id)).Msg("participant overwritten")
	}
	room.Participants[id] = p
	return *p
}

func (s *RoomStore) RemoveParticipant(roomID domain.RoomID, id domain.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return
	}
	delete(room.Participants, id)
	if room.Empty() {
		delete(s.rooms, roomID)
		log.Info().Str("module", "app.store").Str("room", string(roomID)).Msg("room removed")
	}
}

func (s *RoomStore) MoveParticipant(roomID domain.RoomID, id domain.UserID, x, y float64) (domain.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupLocked(roomID, id)
	if !ok {
		return domain.Participant{}, false
	}
	p.MoveTo(x, y)
	return *p, true
}

func (s *RoomStore) SetMedia(roomID domain.RoomID, id domain.UserID, kind domain.MediaKind, enabled bool) (domain.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupLocked(roomID, id)
	if !ok {
		return domain.Participant{}, false
	}
	if !p.SetMedia(kind, enabled) {
		return *p, false
	}
	return *p, true
}

func (s *RoomStore) ListParticipants(roomID domain.RoomID) []domain.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return []domain.Participant{}
	}
	out := make([]domain.Participant, 0, len(room.Participants))
	for _, p := range room.Participants {
		out = append(out, *p)
	}
	return out
}

func (s *RoomStore) Participant(roomID domain.RoomID, id domain.UserID) (domain.Participant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.lookupLocked(roomID, id)
	if !ok {
		return domain.Participant{}, false
	}
	return *p, true
}

func (s *RoomStore) Rooms() []core.RoomInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.MapToSlice(s.rooms, func(_ domain.RoomID, r *domain.Room) core.RoomInfo {
		return roomInfo(r)
	})
}

// Len returns the number of live rooms.
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

func (s *RoomStore) lookupLocked(roomID domain.RoomID, id domain.UserID) (*domain.Participant, bool) {
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, false
	}
	p, ok := room.Participants[id]
	return p, ok
}

func roomInfo(r *domain.Room) core.RoomInfo {
	return core.RoomInfo{ID: r.ID, Participants: len(r.Participants)}
}
