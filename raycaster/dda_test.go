package raycaster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FSMargoo/RCEngine/geom"
)

func squareRoomTexture() *Texture {
	pix := make([]Pixel, 4*4)
	for i := range pix {
		pix[i] = Pixel{R: 200, G: 200, B: 200, A: 255}
	}
	return NewTexture(4, 4, pix)
}

func borderedRoom(n int) *Map {
	m, err := NewMap(n, n)
	if err != nil {
		panic(err)
	}
	tex := squareRoomTexture()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x == 0 || y == 0 || x == n-1 || y == n-1 {
				unit, _ := NewMapUnit(Wall, tex, nil, false)
				m.Set(x, y, *unit)
			}
		}
	}
	return m
}

// Scenario 1: empty room, facing wall.
func TestCastColumn_EmptyRoomFacingWall(t *testing.T) {
	m := borderedRoom(5)
	pos := geom.Vector2{X: 2.5, Y: 2.5}
	rayDir := geom.Vector2{X: -1, Y: 0}

	hits := castColumn(m, pos, rayDir)
	require.Len(t, hits, 1)
	assert.Equal(t, Wall, hits[0].Unit.Type)
	assert.InDelta(t, 1.5, hits[0].PerpDist, 1e-9)
}

// Scenario 2: glass in front of a wall records two hits in order.
func TestCastColumn_GlassInFrontOfWall(t *testing.T) {
	m := borderedRoom(5)
	tex := squareRoomTexture()
	glassUnit, _ := NewMapUnit(Glass, tex, nil, true)
	m.Set(1, 2, *glassUnit)

	pos := geom.Vector2{X: 2.5, Y: 2.5}
	rayDir := geom.Vector2{X: -1, Y: 0}

	hits := castColumn(m, pos, rayDir)
	require.Len(t, hits, 2)
	assert.Equal(t, Glass, hits[0].Unit.Type)
	assert.Equal(t, Wall, hits[1].Unit.Type)
	assert.Less(t, hits[0].PerpDist, hits[1].PerpDist)
}

// Scenario 4: diagonal wall hit.
func TestCastColumn_DiagonalWallHit(t *testing.T) {
	m := borderedRoom(3)
	tex := squareRoomTexture()
	diagUnit, _ := NewMapUnit(DiagRL, tex, nil, false)
	m.Set(1, 1, *diagUnit)

	pos := geom.Vector2{X: 0.5, Y: 0.5}
	rayDir := geom.Vector2{X: 1, Y: 1}
	rayDir = rayDir.Normalize()

	hits := castColumn(m, pos, rayDir)
	var diagHit *Hit
	for i := range hits {
		if hits[i].Side == SideDiag {
			diagHit = &hits[i]
		}
	}
	require.NotNil(t, diagHit)
	assert.True(t, diagHit.WallX >= 0 && diagHit.WallX < 1)
	assert.InDelta(t, math.Sqrt2*0.5, diagHit.PerpDist, 1e-3)
}

func TestCastColumn_AllHitsWithinBounds(t *testing.T) {
	m := borderedRoom(8)
	pos := geom.Vector2{X: 4.5, Y: 4.5}
	diameter := float64(m.Diameter())

	for x := 0; x < 64; x++ {
		cameraX := 2*float64(x)/64 - 1
		dir := geom.Vector2{X: -1, Y: 0}
		plane := geom.Vector2{X: 0, Y: 0.66}
		rayDir := dir.Add(plane.Scale(cameraX))

		hits := castColumn(m, pos, rayDir)
		for _, h := range hits {
			assert.Greater(t, h.PerpDist, 0.0)
			assert.Less(t, h.PerpDist, diameter)
			if h.Side != SideDiag {
				assert.True(t, h.WallX >= 0 && h.WallX < 1)
			}
		}
	}
}
