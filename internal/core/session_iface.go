package core

//go:generate mockgen -source=session_iface.go -destination=mocks/session_mock.go -package=mocks

import "github.com/dkeye/Presence/internal/domain"

// SessionID identifies one live connection. It is assigned by the transport
// and doubles as the participant id once the connection joins a room.
type SessionID string

func (sid SessionID) UserID() domain.UserID { return domain.UserID(sid) }

// ConnectionHub addresses single live connections.
// Room-wide audiences are resolved by the caller from RoomStore state.
type ConnectionHub interface {
	Send(sid SessionID, f Frame) error
	// Disconnect asks the transport to terminate the connection.
	Disconnect(sid SessionID)
}
