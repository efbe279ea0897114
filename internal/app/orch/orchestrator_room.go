package orch

import (
	"github.com/dkeye/Presence/internal/core"
	"github.com/dkeye/Presence/internal/domain"
	"github.com/rs/zerolog/log"
)

type JoinRequest struct {
	Username string
	RoomID   string
}

// Join moves an unjoined session into a room. A second join from a session
// that is already in a room is ignored.
func (o *Orchestrator) Join(sess *Session, req JoinRequest) bool {
	name, err := domain.NormalizeUsername(req.Username)
	if err != nil {
		log.Debug().Err(err).Str("module", "orch").Str("sid", string(sess.SID)).Msg("join dropped")
		return false
	}
	roomID, err := domain.NormalizeRoomID(req.RoomID)
	if err != nil {
		log.Debug().Err(err).Str("module", "orch").Str("sid", string(sess.SID)).Msg("join dropped")
		return false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return false
	}
	if sess.phase == Joined {
		log.Warn().Str("module", "orch").Str("sid", string(sess.SID)).Str("room", string(sess.roomID)).Msg("already joined, ignoring join")
		return false
	}

	p := o.Store.AddParticipant(roomID, sess.SID.UserID(), name)
	sess.phase = Joined
	sess.roomID = roomID
	sess.name = name
	log.Info().Str("module", "orch").Str("sid", string(sess.SID)).Str("room", string(roomID)).Str("name", name).Msg("joined")

	o.sendTo(roomID, sess.SID, core.EventRoomUsers, RoomUsers{Users: o.Store.ListParticipants(roomID)})
	o.broadcast(roomID, sess.SID, core.EventUserJoined, UserJoined{
		UserID:   p.ID,
		Username: p.Name,
		X:        p.X,
		Y:        p.Y,
	})
	return true
}

// Disconnect runs the connection-loss cleanup. Only the first call has effect.
func (o *Orchestrator) Disconnect(sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return
	}
	sess.closed = true
	if sess.phase != Joined {
		return
	}

	o.Store.RemoveParticipant(sess.roomID, sess.SID.UserID())
	log.Info().Str("module", "orch").Str("sid", string(sess.SID)).Str("room", string(sess.roomID)).Msg("left")
	o.broadcast(sess.roomID, sess.SID, core.EventUserLeft, UserLeft{UserID: sess.SID.UserID()})
}
