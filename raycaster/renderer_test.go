package raycaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FSMargoo/RCEngine/geom"
)

func testScene(t *testing.T) (*Scene, *Camera) {
	t.Helper()
	m := borderedRoom(7)
	tex := squareRoomTexture()

	s, err := NewScene(m)
	require.NoError(t, err)
	s.Floor = tex
	s.Ceiling = tex
	require.True(t, s.CheckValid())

	cam := NewCamera(geom.Vector2{X: 3.5, Y: 3.5}, geom.Vector2{X: -1, Y: 0})
	return s, cam
}

func TestRenderer_EveryPixelWritten(t *testing.T) {
	s, cam := testScene(t)
	r, err := NewRenderer(32, 24)
	require.NoError(t, err)

	buf, elapsed, err := r.Render(s, cam)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 0.001)

	zero := Pixel{}
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			assert.NotEqual(t, zero, buf.At(x, y), "pixel (%d,%d) was never written", x, y)
		}
	}
}

func TestRenderer_DeterministicAcrossRuns(t *testing.T) {
	s, cam := testScene(t)
	r, err := NewRenderer(16, 12)
	require.NoError(t, err)

	buf1, _, err := r.Render(s, cam)
	require.NoError(t, err)
	want := make([]Pixel, len(buf1.Pix))
	copy(want, buf1.Pix)

	buf2, _, err := r.Render(s, cam)
	require.NoError(t, err)
	assert.Equal(t, want, buf2.Pix)
}

func TestRenderer_RejectsInvalidScene(t *testing.T) {
	m := borderedRoom(5)
	s, err := NewScene(m)
	require.NoError(t, err)

	r, err := NewRenderer(8, 8)
	require.NoError(t, err)

	_, _, err = r.Render(s, NewCamera(geom.Vector2{X: 2.5, Y: 2.5}, geom.Vector2{X: -1, Y: 0}))
	assert.Error(t, err)
}
