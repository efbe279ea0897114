package orch

import (
	"github.com/dkeye/Presence/internal/core"
	"github.com/dkeye/Presence/internal/domain"
	"github.com/rs/zerolog/log"
)

// Move stores the clamped position and tells the rest of the room.
func (o *Orchestrator) Move(sess *Session, x, y float64) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.joinedLocked() {
		return false
	}
	p, ok := o.Store.MoveParticipant(sess.roomID, sess.SID.UserID(), x, y)
	if !ok {
		return false
	}
	o.broadcast(sess.roomID, sess.SID, core.EventUserMoved, UserMoved{UserID: p.ID, X: p.X, Y: p.Y})
	return true
}

// ToggleMedia updates an audio or video flag. Speaking indicators are only relayed.
func (o *Orchestrator) ToggleMedia(sess *Session, kind string, enabled bool) bool {
	mk, err := domain.ParseMediaKind(kind)
	if err != nil {
		log.Debug().Err(err).Str("module", "orch").Str("sid", string(sess.SID)).Str("kind", kind).Msg("media toggle dropped")
		return false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.joinedLocked() {
		return false
	}
	if mk.Stored() {
		if _, ok := o.Store.SetMedia(sess.roomID, sess.SID.UserID(), mk, enabled); !ok {
			return false
		}
	} else if _, ok := o.Store.Participant(sess.roomID, sess.SID.UserID()); !ok {
		return false
	}
	o.broadcast(sess.roomID, sess.SID, core.EventMediaToggle, MediaToggled{
		UserID:  sess.SID.UserID(),
		Type:    mk,
		Enabled: enabled,
	})
	return true
}
