package core

import (
	"encoding/json"
	"fmt"
)

type EventType string

// Inbound.
const (
	EventJoin        EventType = "user:join"
	EventMove        EventType = "user:move"
	EventChatMessage EventType = "chat:message"
	EventPing        EventType = "ping"
)

// Outbound.
const (
	EventRoomUsers     EventType = "room:users"
	EventUserJoined    EventType = "user:joined"
	EventUserMoved     EventType = "user:moved"
	EventChatBroadcast EventType = "chat:broadcast"
	EventUserLeft      EventType = "user:left"
	EventPong          EventType = "pong"
)

// Both directions.
const (
	EventMediaToggle  EventType = "media:toggle"
	EventOffer        EventType = "webrtc:offer"
	EventAnswer       EventType = "webrtc:answer"
	EventICECandidate EventType = "webrtc:ice-candidate"
)

// IsSignal reports whether t is one of the relayed negotiation events.
func (t EventType) IsSignal() bool {
	return t == EventOffer || t == EventAnswer || t == EventICECandidate
}

// Envelope is the wire shape of every frame in both directions.
type Envelope struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode wraps v into an Envelope frame.
func Encode(t EventType, v any) (Frame, error) {
	var raw json.RawMessage
	if v != nil {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", t, err)
		}
		raw = b
	}
	return EncodeRaw(t, raw)
}

// EncodeRaw wraps an already encoded payload without touching it.
func EncodeRaw(t EventType, payload json.RawMessage) (Frame, error) {
	b, err := json.Marshal(Envelope{Type: t, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", t, err)
	}
	return b, nil
}
