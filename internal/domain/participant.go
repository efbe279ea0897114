package domain

import (
	"math"

	"github.com/samber/lo"
)

// World bounds in canvas pixels.
const (
	WorldWidth  = 960
	WorldHeight = 640
)

// Spawn area for freshly joined participants: x in [SpawnMinX, SpawnMinX+SpawnSpanX),
// y in [SpawnMinY, SpawnMinY+SpawnSpanY).
const (
	SpawnMinX  = 50
	SpawnMinY  = 50
	SpawnSpanX = 700
	SpawnSpanY = 500
)

// Participant is the server-tracked state of one joined connection.
type Participant struct {
	ID    UserID  `json:"id"`
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Audio bool    `json:"audio"`
	Video bool    `json:"video"`
}

// NewParticipant avoids raw literals in the store and keeps construction obvious.
func NewParticipant(id UserID, name string, x, y float64) *Participant {
	return &Participant{ID: id, Name: name, X: x, Y: y}
}

// MoveTo stores a clamped position. NaN coordinates collapse to 0.
func (p *Participant) MoveTo(x, y float64) {
	p.X = ClampAxis(x, WorldWidth)
	p.Y = ClampAxis(y, WorldHeight)
}

// SetMedia reports false when kind is not persisted on the participant.
func (p *Participant) SetMedia(kind MediaKind, enabled bool) bool {
	switch kind {
	case MediaAudio:
		p.Audio = enabled
	case MediaVideo:
		p.Video = enabled
	default:
		return false
	}
	return true
}

func ClampAxis(v, upper float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return lo.Clamp(v, 0, upper)
}
