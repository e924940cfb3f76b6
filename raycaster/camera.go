package raycaster

import (
	"fmt"
	"math"

	"github.com/FSMargoo/RCEngine/geom"
)

// Camera holds the 2D position/direction/plane basis, pitch, and
// virtual Z the renderer reads once per frame. Fields are plain (no
// friend-class indirection); Renderer and Interactor mutate it through
// these methods, which is the Go replacement for RCCamera's
// friend-class access described in DESIGN.md.
type Camera struct {
	Pos   geom.Vector2
	Dir   geom.Vector2
	Plane geom.Vector2

	// pitch is a ratio in [-1, 1]; PitchPixels() scales it by PitchMax.
	pitch float64

	// Z is the virtual eye height offset for crouch/jump.
	Z float64
}

// NewCamera builds a camera at pos facing dir, with the default FOV
// factor (|plane| = 0.66 * |dir|) matching RCCamera's default
// constructor (Direction(-1,0), Plane(0,0.66)).
func NewCamera(pos geom.Vector2, dir geom.Vector2) *Camera {
	perp := geom.Vector2{X: dir.Y, Y: -dir.X}
	return &Camera{
		Pos:   pos,
		Dir:   dir,
		Plane: perp.Scale(0.66),
	}
}

// SetFov rescales Plane in-place to the requested full FOV (radians),
// keeping Plane's current perpendicular direction — mirrors
// RCCamera::SetFov, which normalizes Plane to the new tan(fov/2)
// length from whatever direction it already points.
func (c *Camera) SetFov(fovRadians float64) {
	dir := c.Plane.Normalize()
	c.Plane = dir.Scale(math.Tan(fovRadians / 2))
}

// Pitch returns the current pitch ratio.
func (c *Camera) Pitch() float64 {
	return c.pitch
}

// SetPitch validates and sets pitch, matching RCCamera::SetPitch's
// |pitch|>1 rejection (RCInvalidParameterException in the original).
func (c *Camera) SetPitch(p float64) error {
	if math.Abs(p) > 1 {
		return fmt.Errorf("raycaster: invalid pitch %f, must be in [-1,1]", p)
	}
	c.pitch = p
	return nil
}

// AddPitch adjusts pitch by delta, clamping to [-1, 1] rather than
// erroring — this is what the Interactor's look-up/down uses every
// frame (§4.5), where clamping, not rejection, is the desired behavior.
func (c *Camera) AddPitch(delta float64) {
	c.pitch = geom.ClampFloat64(c.pitch+delta, -1, 1)
}

// PitchPixels converts the pitch ratio to a horizon-shift pixel count
// for a screen of the given height, per §6: PitchMax = height/4.
func (c *Camera) PitchPixels(screenHeight int) int {
	pitchMax := float64(screenHeight) / 4
	return int(c.pitch * pitchMax)
}

// Rotate spins Dir and Plane by angle radians about the origin,
// preserving their lengths (and thus FOV) — used by look-left/right.
func (c *Camera) Rotate(angle float64) {
	sin, cos := math.Sin(angle), math.Cos(angle)
	rot := func(v geom.Vector2) geom.Vector2 {
		return geom.Vector2{
			X: v.X*cos - v.Y*sin,
			Y: v.X*sin + v.Y*cos,
		}
	}
	c.Dir = rot(c.Dir)
	c.Plane = rot(c.Plane)
}

// RayLeft and RayRight are the ray directions at the two screen edges —
// RayLeft is the x=0 column's ray and RayRight is the x=w column's ray,
// matching RayForColumn's cameraX=-1/+1 endpoints exactly. Used by
// floor/ceiling casting to interpolate a ray per row without calling
// RayForColumn per pixel.
func (c *Camera) RayLeft() geom.Vector2  { return c.Dir.Sub(c.Plane) }
func (c *Camera) RayRight() geom.Vector2 { return c.Dir.Add(c.Plane) }

// RayForColumn returns the ray direction for screen column x of w,
// per §4.1 step 1: dir + plane*cameraX, cameraX = 2x/w - 1.
func (c *Camera) RayForColumn(x, w int) geom.Vector2 {
	cameraX := 2*float64(x)/float64(w) - 1
	return c.Dir.Add(c.Plane.Scale(cameraX))
}
