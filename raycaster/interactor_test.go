package raycaster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FSMargoo/RCEngine/geom"
)

// Scenario 3: closed door blocks movement; open door passes.
func TestInteractor_DoorBlocksThenPermitsMovement(t *testing.T) {
	m, err := NewMap(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	tex := squareRoomTexture()
	door := NewDoorState(64)
	door.Min = 10
	door.Max = 64
	doorUnit, _ := NewMapUnit(Door, tex, door, false)
	m.Set(1, 0, *doorUnit)

	cam := NewCamera(geom.Vector2{X: 1, Y: 1}, geom.Vector2{X: 0, Y: -1})
	in := NewInteractor()
	in.SetKey(MoveForward, true)

	in.Step(cam, m, 0.1)
	assert.Equal(t, 1.0, cam.Pos.X)
	assert.Equal(t, 1.0, cam.Pos.Y, "closed door must block movement")

	in.Interact(cam, m, 64)
	for door.InAnimation {
		door.Step(2.0)
	}
	assert.True(t, door.Open())

	in.Step(cam, m, 0.1)
	assert.InDelta(t, 1.0-0.45, cam.Pos.Y, 1e-9)
}

func TestInteractor_AxisSeparatedCollisionNeverEmbedsCamera(t *testing.T) {
	m := borderedRoom(5)
	cam := NewCamera(geom.Vector2{X: 2.5, Y: 1.5}, geom.Vector2{X: 0, Y: -1})
	in := NewInteractor()
	in.SetKey(MoveForward, true)

	for i := 0; i < 100; i++ {
		in.Step(cam, m, 0.05)
		x, y := int(cam.Pos.X), int(cam.Pos.Y)
		unit := m.At(x, y)
		assert.True(t, unit.Passable || unit.Type == Air)
	}
}
