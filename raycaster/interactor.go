package raycaster

import (
	"math"

	"github.com/FSMargoo/RCEngine/geom"
)

// MoveKey tags the directional keys the Interactor tracks, per §6's
// default bindings (W/A/S/D).
type MoveKey int

const (
	MoveForward MoveKey = iota
	MoveBack
	MoveLeft
	MoveRight
)

// SpeedMode is the Normal/Sneaking/Sprinting state machine that
// replaces the original's fall-through KEYUP bug (§9 Open Question 5,
// DESIGN.md decision 2): each transition is its own case, no
// fallthrough between Sprint and Sneak handling.
type SpeedMode int

const (
	SpeedNormal SpeedMode = iota
	SpeedSneaking
	SpeedSprinting
)

// Interactor drives camera movement, look, door interaction, and door
// animation — grounded on RCInteractor.cpp.
type Interactor struct {
	MoveSpeed   float64
	RotateSpeed float64
	PitchSpeed  float64
	Reach       float64

	keys  map[MoveKey]bool
	speed SpeedMode

	animatingDoors []*DoorState
}

// NewInteractor builds an Interactor with the default tuning constants
// from §6: move speed 4.5, rotate speed pi/2 rad/s, pitch speed 1.8,
// reach 2.2 cells.
func NewInteractor() *Interactor {
	return &Interactor{
		MoveSpeed:   4.5,
		RotateSpeed: math.Pi / 2,
		PitchSpeed:  1.8,
		Reach:       2.2,
		keys:        make(map[MoveKey]bool),
	}
}

func (in *Interactor) SetKey(k MoveKey, down bool) {
	in.keys[k] = down
}

// SetSpeedMode replaces the original's independent Sneak/Sprint
// booleans (which could both be set, and whose KEYUP handlers fell
// through into each other) with one exclusive mode.
func (in *Interactor) SetSpeedMode(m SpeedMode) {
	in.speed = m
}

func (in *Interactor) speedFactor() float64 {
	switch in.speed {
	case SpeedSneaking:
		return 0.3
	case SpeedSprinting:
		return 2.0
	default:
		return 1.0
	}
}

// cameraZFor returns the crouch/jump Z offset for the current speed
// mode — only sneaking affects Z in the original (RCInteractor sets
// Z=-100 on Sneak keydown, Z=0 on its keyup).
func (in *Interactor) cameraZFor() float64 {
	if in.speed == SpeedSneaking {
		return -100
	}
	return 0
}

// Step advances movement for one frame: axis-separated collision
// against m, per §4.5. Pressed keys contribute tentative deltas from
// the camera's forward/right basis; each axis commits independently.
func (in *Interactor) Step(cam *Camera, m *Map, dt float64) {
	cam.Z = in.cameraZFor()

	speed := in.MoveSpeed * dt * in.speedFactor()
	right := geom.Vector2{X: -cam.Dir.Y, Y: cam.Dir.X}

	var delta geom.Vector2
	if in.keys[MoveForward] {
		delta = delta.Add(cam.Dir.Scale(speed))
	}
	if in.keys[MoveBack] {
		delta = delta.Sub(cam.Dir.Scale(speed))
	}
	if in.keys[MoveRight] {
		delta = delta.Add(right.Scale(speed))
	}
	if in.keys[MoveLeft] {
		delta = delta.Sub(right.Scale(speed))
	}

	in.moveAxis(cam, m, delta.X, 0)
	in.moveAxis(cam, m, 0, delta.Y)
}

func (in *Interactor) moveAxis(cam *Camera, m *Map, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	targetX := int(math.Floor(cam.Pos.X + dx))
	targetY := int(math.Floor(cam.Pos.Y + dy))
	if !m.InBounds(targetX, targetY) {
		return
	}
	u := m.At(targetX, targetY)
	doorPassable := u.Type == Door && u.Door.Open() && !u.Door.InAnimation
	if u.Passable || u.Type == Air || doorPassable {
		cam.Pos.X += dx
		cam.Pos.Y += dy
	}
}

// Look rotates dir/plane and adjusts pitch from mouse deltas, per
// §4.5: rotate by RotateSpeed*dt*dx, pitch by PitchSpeed*RotateSpeed*dt*dy.
func (in *Interactor) Look(cam *Camera, dt, dx, dy float64) {
	cam.Rotate(in.RotateSpeed * dt * dx)
	cam.AddPitch(in.PitchSpeed * in.RotateSpeed * dt * dy)
}

// Interact casts the use-ray across every screen column (the
// reference implementation's choice per §4.5) and toggles the first
// Door hit within Reach.
func (in *Interactor) Interact(cam *Camera, m *Map, screenWidth int) {
	for x := 0; x < screenWidth; x++ {
		hits := castColumn(m, cam.Pos, cam.RayForColumn(x, screenWidth))
		if len(hits) == 0 {
			continue
		}
		h := hits[0]
		if h.Unit.Type != Door || h.PerpDist > in.Reach {
			continue
		}
		if !h.Unit.Door.InAnimation {
			h.Unit.Door.Toggle()
			in.animatingDoors = append(in.animatingDoors, h.Unit.Door)
		}
	}
}

// StepDoors advances every animating door's offset by dt and drops it
// from the working set once it reaches its endpoint, per §4.5.
func (in *Interactor) StepDoors(dt float64) {
	live := in.animatingDoors[:0]
	for _, d := range in.animatingDoors {
		d.Step(dt)
		if d.InAnimation {
			live = append(live, d)
		}
	}
	in.animatingDoors = live
}

// TriggerSprites fires ApplyTrigger on every interactable sprite
// within its TriggerRange of the camera, every frame it remains in
// range — matching RCInteractor::SpriteInteractor's per-frame (not
// edge-triggered) proximity check, per SPEC_FULL.md's supplemented
// features.
func (in *Interactor) TriggerSprites(cam *Camera, sprites []*Sprite) {
	for _, sp := range sprites {
		if !sp.Interactable {
			continue
		}
		dx, dy := sp.X-cam.Pos.X, sp.Y-cam.Pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < sp.TriggerRange {
			sp.ApplyTrigger()
		}
	}
}
