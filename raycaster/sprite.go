package raycaster

// TriggerActionKind tags what a sprite's proximity trigger does. This
// replaces the original's stored OnTrigger closure (a dynamic-dispatch
// callback, see DESIGN.md re-architecture notes) with a data-only
// action the host resolves, keeping the core free of caller callbacks.
type TriggerActionKind int

const (
	TriggerNone TriggerActionKind = iota
	TriggerMoveBy
	TriggerTeleport
	TriggerCustom
)

// TriggerAction describes what should happen when a sprite is
// triggered. DX/DY are used by TriggerMoveBy, X/Y by TriggerTeleport,
// CustomID by TriggerCustom (resolved by the host's own action table).
type TriggerAction struct {
	Kind     TriggerActionKind
	DX, DY   float64
	X, Y     float64
	CustomID int
}

// Sprite is a world-anchored billboard. X/Y is world position, Z is a
// vertical screen-space offset scaled by depth at render time.
type Sprite struct {
	Texture *Texture
	X, Y    float64
	Z       float64

	Interactable bool
	TriggerRange float64
	OnTrigger    TriggerAction
}

// ApplyTrigger performs a TriggerMoveBy/TriggerTeleport action
// directly on the sprite; TriggerCustom and TriggerNone are left to
// the host to interpret and are no-ops here.
func (s *Sprite) ApplyTrigger() {
	switch s.OnTrigger.Kind {
	case TriggerMoveBy:
		s.X += s.OnTrigger.DX
		s.Y += s.OnTrigger.DY
	case TriggerTeleport:
		s.X = s.OnTrigger.X
		s.Y = s.OnTrigger.Y
	}
}
