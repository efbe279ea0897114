package signal

import (
	"github.com/dkeye/Presence/internal/app/orch"
)

func (ctl *SignalWSController) handleJoin(sess *orch.Session, payload []byte) {
	ctl.Orch.Join(sess, orch.JoinRequest{
		Username: str(payload, "username"),
		RoomID:   str(payload, "roomId"),
	})
}
