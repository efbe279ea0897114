package orch

import (
	"sync"

	"github.com/dkeye/Presence/internal/core"
	"github.com/dkeye/Presence/internal/domain"
)

type Phase int

const (
	Unjoined Phase = iota
	Joined
)

func (p Phase) String() string {
	if p == Joined {
		return "joined"
	}
	return "unjoined"
}

// State is a read-only view of a Session.
type State struct {
	Phase  Phase
	RoomID domain.RoomID
	Name   string
	Closed bool
}

// Session is the protocol state of one connection.
// Handlers hold mu for their whole run, so events and disconnect for the
// same connection never interleave.
type Session struct {
	SID core.SessionID

	mu     sync.Mutex
	phase  Phase
	roomID domain.RoomID
	name   string
	closed bool
}

func NewSession(sid core.SessionID) *Session {
	return &Session{SID: sid}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Phase: s.phase, RoomID: s.roomID, Name: s.name, Closed: s.closed}
}

// joinedLocked reports whether room-scoped events may run.
func (s *Session) joinedLocked() bool {
	return !s.closed && s.phase == Joined
}
