package signal

import "github.com/dkeye/Presence/internal/app/orch"

func (ctl *SignalWSController) handleMove(sess *orch.Session, payload []byte) {
	ctl.Orch.Move(sess, num(payload, "x"), num(payload, "y"))
}

func (ctl *SignalWSController) handleMediaToggle(sess *orch.Session, payload []byte) {
	ctl.Orch.ToggleMedia(sess, str(payload, "type"), flag(payload, "enabled"))
}

func (ctl *SignalWSController) handleChat(sess *orch.Session, payload []byte) {
	ctl.Orch.Chat(sess, str(payload, "text"))
}
