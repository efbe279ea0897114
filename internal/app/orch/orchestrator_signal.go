package orch

import (
	"github.com/dkeye/Presence/internal/core"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Relay forwards a negotiation payload to the connection named in "to".
// The payload is passed through untouched apart from the added "from".
// It works in any phase since the audience is one connection, not a room.
func (o *Orchestrator) Relay(sess *Session, t core.EventType, payload []byte) bool {
	if !t.IsSignal() {
		return false
	}
	to := gjson.GetBytes(payload, "to").String()
	if to == "" {
		log.Debug().Str("module", "orch").Str("sid", string(sess.SID)).Str("event", string(t)).Msg("relay without target dropped")
		return false
	}
	out, err := sjson.SetBytes(payload, "from", string(sess.SID))
	if err != nil {
		log.Warn().Err(err).Str("module", "orch").Str("sid", string(sess.SID)).Str("event", string(t)).Msg("relay payload rejected")
		return false
	}
	f, err := core.EncodeRaw(t, out)
	if err != nil {
		log.Warn().Err(err).Str("module", "orch").Str("sid", string(sess.SID)).Str("event", string(t)).Msg("relay payload rejected")
		return false
	}

	room := sess.State().RoomID
	return o.deliver(room, core.SessionID(to), t, f)
}

// Ping answers the sender only.
func (o *Orchestrator) Ping(sess *Session) bool {
	return o.sendTo(sess.State().RoomID, sess.SID, core.EventPong, nil)
}
