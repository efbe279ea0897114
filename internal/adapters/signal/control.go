package signal

import "github.com/dkeye/Presence/internal/app/orch"

func (ctl *SignalWSController) handlePing(sess *orch.Session) {
	ctl.Orch.Ping(sess)
}
