package orch

import (
	"testing"

	"github.com/dkeye/Presence/internal/app"
	"github.com/dkeye/Presence/internal/core"
	"github.com/dkeye/Presence/internal/core/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDeliver_BackpressureKicksSlowMemberOnly(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	a := f.joined(t, "A", "Alice", "lobby")
	f.joined(t, "B", "Bob", "lobby")
	f.joined(t, "C", "Carol", "lobby")
	f.hub.fail["B"] = core.ErrBackpressure

	req.True(f.orch.Chat(a, "hi"))

	req.Equal([]core.SessionID{"B"}, f.hub.kicked)
	req.Len(f.hub.received("A", core.EventChatBroadcast), 1)
	req.Len(f.hub.received("C", core.EventChatBroadcast), 1)
}

func TestDeliver_UnknownSessionIsNotKicked(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	a := f.joined(t, "A", "Alice", "lobby")

	req.False(f.orch.Relay(a, core.EventOffer, []byte(`{"to":"gone"}`)))
	req.Empty(f.hub.kicked)
}

func TestDeliver_DropPolicyKeepsMember(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockConnectionHub(ctrl)
	store := app.NewRoomStore()
	o := New(store, hub, app.TolerantPolicy{})

	// Alice and Bob are in the room; Bob's queue is full.
	store.AddParticipant("lobby", "A", "Alice")
	store.AddParticipant("lobby", "B", "Bob")
	a := NewSession("A")
	a.phase, a.roomID, a.name = Joined, "lobby", "Alice"

	hub.EXPECT().Send(core.SessionID("B"), gomock.Any()).Return(core.ErrBackpressure)
	hub.EXPECT().Disconnect(gomock.Any()).Times(0)

	req.True(o.Move(a, 10, 20))
}

func TestDeliver_FailureDoesNotStopFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockConnectionHub(ctrl)
	store := app.NewRoomStore()
	o := New(store, hub, nil)

	store.AddParticipant("lobby", "A", "Alice")
	store.AddParticipant("lobby", "B", "Bob")
	store.AddParticipant("lobby", "C", "Carol")
	a := NewSession("A")
	a.phase, a.roomID, a.name = Joined, "lobby", "Alice"

	hub.EXPECT().Send(core.SessionID("A"), gomock.Any()).Return(nil)
	hub.EXPECT().Send(core.SessionID("B"), gomock.Any()).Return(core.ErrConnectionClosed)
	hub.EXPECT().Send(core.SessionID("C"), gomock.Any()).Return(nil)

	require.True(t, o.Chat(a, "hello"))
}
