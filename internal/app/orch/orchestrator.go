// Package orch implements the per-connection session protocol: it validates
// inbound events, mutates the RoomStore and decides who hears about it.
package orch

import (
	"errors"
	"time"

	"github.com/dkeye/Presence/internal/app"
	"github.com/dkeye/Presence/internal/core"
	"github.com/dkeye/Presence/internal/domain"
	"github.com/rs/zerolog/log"
)

type Orchestrator struct {
	Store  core.RoomStore
	Hub    core.ConnectionHub
	Policy app.Policy
	Clock  func() time.Time
}

func New(store core.RoomStore, hub core.ConnectionHub, policy app.Policy) *Orchestrator {
	return &Orchestrator{
		Store:  store,
		Hub:    hub,
		Policy: policy,
		Clock:  time.Now,
	}
}

// broadcast sends v to every current member of room except the given session.
// Pass an empty except to reach the whole room.
func (o *Orchestrator) broadcast(room domain.RoomID, except core.SessionID, t core.EventType, v any) int {
	f, err := core.Encode(t, v)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Str("event", string(t)).Msg("encode broadcast")
		return 0
	}
	sent := 0
	for _, p := range o.Store.ListParticipants(room) {
		sid := core.SessionID(p.ID)
		if sid == except {
			continue
		}
		if o.deliver(room, sid, t, f) {
			sent++
		}
	}
	log.Debug().Str("module", "orch").Str("room", string(room)).Str("event", string(t)).Int("sent_to", sent).Msg("broadcast result")
	return sent
}

func (o *Orchestrator) sendTo(room domain.RoomID, sid core.SessionID, t core.EventType, v any) bool {
	f, err := core.Encode(t, v)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Str("event", string(t)).Msg("encode send")
		return false
	}
	return o.deliver(room, sid, t, f)
}

// deliver never aborts the caller: failures are logged and handed to the policy.
func (o *Orchestrator) deliver(room domain.RoomID, sid core.SessionID, t core.EventType, f core.Frame) bool {
	err := o.Hub.Send(sid, f)
	if err == nil {
		return true
	}
	log.Warn().Err(err).Str("module", "orch").Str("sid", string(sid)).Str("event", string(t)).Msg("delivery failed")

	if !errors.Is(err, core.ErrBackpressure) || o.Policy == nil {
		return false
	}
	switch o.Policy.OnBackPressure(room, sid) {
	case app.KickMember:
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(room)).Msg("kicking slow member")
		o.Hub.Disconnect(sid)
	case app.DropFrame, app.NoAction:
	}
	return false
}
