package signal

import (
	"github.com/dkeye/Presence/internal/app/orch"
	"github.com/dkeye/Presence/internal/core"
)

// handleRelay passes offers, answers and ICE candidates through unread.
func (ctl *SignalWSController) handleRelay(sess *orch.Session, t core.EventType, payload []byte) {
	ctl.Orch.Relay(sess, t, payload)
}
