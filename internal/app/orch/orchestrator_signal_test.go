package orch

import (
	"encoding/json"
	"testing"

	"github.com/dkeye/Presence/internal/core"
	"github.com/stretchr/testify/require"
)

func TestRelay_DeliveredOnlyToTargetWithFrom(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	a := f.joined(t, "A", "Alice", "lobby")
	f.joined(t, "B", "Bob", "lobby")
	f.joined(t, "C", "Carol", "lobby")
	f.hub.reset()

	payload := []byte(`{"to":"B","offer":{"type":"offer","sdp":"v=0\r\n"},"extra":[1,2,3]}`)
	req.True(f.orch.Relay(a, core.EventOffer, payload))

	got := f.hub.received("B", core.EventOffer)
	req.Len(got, 1)
	var body map[string]any
	req.NoError(json.Unmarshal(got[0].Payload, &body))
	req.Equal("A", body["from"])
	req.Equal("B", body["to"])
	req.Equal(map[string]any{"type": "offer", "sdp": "v=0\r\n"}, body["offer"])
	req.Equal([]any{1.0, 2.0, 3.0}, body["extra"])

	req.Empty(f.hub.received("A", core.EventOffer))
	req.Empty(f.hub.received("C", core.EventOffer))
}

func TestRelay_AllKindsWorkWithoutJoining(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	a := f.session("A")
	f.session("B")

	for _, et := range []core.EventType{core.EventOffer, core.EventAnswer, core.EventICECandidate} {
		req.True(f.orch.Relay(a, et, []byte(`{"to":"B"}`)))
		req.Len(f.hub.received("B", et), 1)
	}
}

func TestRelay_SenderCannotForgeFrom(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	a := f.session("A")
	f.session("B")

	req.True(f.orch.Relay(a, core.EventAnswer, []byte(`{"to":"B","from":"Z"}`)))

	var body map[string]any
	req.NoError(json.Unmarshal(f.hub.received("B", core.EventAnswer)[0].Payload, &body))
	req.Equal("A", body["from"])
}

func TestRelay_Dropped(t *testing.T) {
	cases := map[string]struct {
		event   core.EventType
		payload string
	}{
		"missing to":     {core.EventOffer, `{"sdp":"x"}`},
		"empty to":       {core.EventOffer, `{"to":""}`},
		"null payload":   {core.EventAnswer, `null`},
		"empty payload":  {core.EventAnswer, ``},
		"not a signal":   {core.EventChatMessage, `{"to":"B"}`},
		"unknown target": {core.EventICECandidate, `{"to":"nobody"}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			f := newFixture()
			a := f.session("A")
			f.session("B")

			req.False(f.orch.Relay(a, tc.event, []byte(tc.payload)))
			req.Empty(f.hub.received("B", tc.event))
		})
	}
}

func TestPing_AnswersSenderOnly(t *testing.T) {
	req := require.New(t)
	f := newFixture()
	a := f.joined(t, "A", "Alice", "lobby")
	f.joined(t, "B", "Bob", "lobby")

	req.True(f.orch.Ping(a))

	req.Len(f.hub.received("A", core.EventPong), 1)
	req.Empty(f.hub.received("B", core.EventPong))
}
