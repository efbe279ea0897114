package orch

import (
	"github.com/dkeye/Presence/internal/core"
	"github.com/dkeye/Presence/internal/domain"
	"github.com/rs/zerolog/log"
)

// Chat stamps the message and echoes it to the whole room, sender included.
func (o *Orchestrator) Chat(sess *Session, text string) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.joinedLocked() {
		return false
	}
	msg, err := domain.NewChatMessage(sess.SID.UserID(), sess.name, text, o.Clock())
	if err != nil {
		log.Debug().Err(err).Str("module", "orch").Str("sid", string(sess.SID)).Msg("chat dropped")
		return false
	}
	o.broadcast(sess.roomID, "", core.EventChatBroadcast, ChatBroadcast{Message: msg})
	return true
}
