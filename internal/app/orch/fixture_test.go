package orch

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dkeye/Presence/internal/app"
	"github.com/dkeye/Presence/internal/core"
	"github.com/stretchr/testify/require"
)

// recordingHub stands in for the transport: it decodes every frame it is
// asked to send and keeps it per recipient.
type recordingHub struct {
	mu     sync.Mutex
	live   map[core.SessionID]bool
	fail   map[core.SessionID]error
	inbox  map[core.SessionID][]core.Envelope
	kicked []core.SessionID
}

func newRecordingHub() *recordingHub {
	return &recordingHub{
		live:  make(map[core.SessionID]bool),
		fail:  make(map[core.SessionID]error),
		inbox: make(map[core.SessionID][]core.Envelope),
	}
}

func (h *recordingHub) connect(sid core.SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.live[sid] = true
}

func (h *recordingHub) Send(sid core.SessionID, f core.Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.live[sid] {
		return core.ErrUnknownSession
	}
	if err := h.fail[sid]; err != nil {
		return err
	}
	var env core.Envelope
	if err := json.Unmarshal(f, &env); err != nil {
		return err
	}
	h.inbox[sid] = append(h.inbox[sid], env)
	return nil
}

func (h *recordingHub) Disconnect(sid core.SessionID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.kicked = append(h.kicked, sid)
}

func (h *recordingHub) received(sid core.SessionID, t core.EventType) []core.Envelope {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []core.Envelope
	for _, e := range h.inbox[sid] {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (h *recordingHub) reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inbox = make(map[core.SessionID][]core.Envelope)
}

type fixture struct {
	store *app.RoomStore
	hub   *recordingHub
	orch  *Orchestrator
}

func newFixture() *fixture {
	store := app.NewRoomStore()
	hub := newRecordingHub()
	o := New(store, hub, app.SimplePolicy{})
	o.Clock = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return &fixture{store: store, hub: hub, orch: o}
}

func (f *fixture) session(sid core.SessionID) *Session {
	f.hub.connect(sid)
	return NewSession(sid)
}

func (f *fixture) joined(t *testing.T, sid core.SessionID, name, room string) *Session {
	t.Helper()
	s := f.session(sid)
	require.True(t, f.orch.Join(s, JoinRequest{Username: name, RoomID: room}))
	return s
}

func decode[T any](t *testing.T, env core.Envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Payload, &v))
	return v
}
