package raycaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func onePixelTexture(c Pixel) *Texture {
	pix := make([]Pixel, 4)
	for i := range pix {
		pix[i] = c
	}
	return NewTexture(2, 2, pix)
}

// Scenario 6: sprite occlusion by depth.
func TestCompositeColumn_SpriteOcclusionByDepth(t *testing.T) {
	red := onePixelTexture(Pixel{R: 255, A: 255})
	blue := onePixelTexture(Pixel{B: 255, A: 255})

	wallUnit, _ := NewMapUnit(Wall, red, nil, false)

	buf := NewPixelBuffer(1, 10)

	// Wall at depth 2.0, sprite at depth 4.0: sprite must lose. On a
	// 10-row screen the wall strip covers rows 2..6 and the sprite, sized
	// as projectSprites does (10/4.0 -> 2 rows centred on the horizon),
	// covers rows 4..5, entirely behind the wall.
	hits := []Hit{{PerpDist: 2.0, WallX: 0.5, Side: SideEW, Unit: wallUnit}}
	sprite := &projectedSprite{
		sprite:     &Sprite{Texture: blue},
		transformY: 4.0,
		startX: 0, endX: 1, startY: 4, endY: 6,
		clipStartX: 0, clipEndX: 1,
	}
	sprites := []*projectedSprite{sprite}
	cursor := 0
	compositeColumn(buf, 0, hits, sprites, &cursor, 10, 0, 0, FogSettings{}, 10)

	foundRed, foundBlue := false, false
	for y := 0; y < 10; y++ {
		p := buf.At(0, y)
		if p.R == 255 {
			foundRed = true
		}
		if p.B == 255 {
			foundBlue = true
		}
	}
	assert.True(t, foundRed, "wall strip must be drawn")
	assert.False(t, foundBlue, "sprite farther than the wall must not be drawn over it")

	// Now wall recedes to depth 5.0, sprite stays at depth 4.0: sprite wins.
	buf2 := NewPixelBuffer(1, 10)
	hits2 := []Hit{{PerpDist: 5.0, WallX: 0.5, Side: SideEW, Unit: wallUnit}}
	sprite2 := &projectedSprite{
		sprite:     &Sprite{Texture: blue},
		transformY: 4.0,
		startX: 0, endX: 1, startY: 0, endY: 10,
		clipStartX: 0, clipEndX: 1,
	}
	cursor2 := 0
	compositeColumn(buf2, 0, hits2, []*projectedSprite{sprite2}, &cursor2, 10, 0, 0, FogSettings{}, 10)

	blueOverWall := false
	for y := 0; y < 10; y++ {
		if buf2.At(0, y).B == 255 {
			blueOverWall = true
		}
	}
	assert.True(t, blueOverWall, "sprite nearer than the wall must be drawn over it")
}

func TestDrawWallStrip_GlassBlendsWithDestination(t *testing.T) {
	glassTex := onePixelTexture(Pixel{R: 100, G: 100, B: 100, A: 255})
	glassUnit, _ := NewMapUnit(Glass, glassTex, nil, true)

	buf := NewPixelBuffer(1, 4)
	buf.Set(0, 0, Pixel{R: 50, G: 50, B: 50, A: 255})
	buf.Set(0, 1, Pixel{R: 50, G: 50, B: 50, A: 255})
	buf.Set(0, 2, Pixel{R: 50, G: 50, B: 50, A: 255})
	buf.Set(0, 3, Pixel{R: 50, G: 50, B: 50, A: 255})

	h := Hit{PerpDist: 1.0, WallX: 0.5, Side: SideEW, Unit: glassUnit}
	drawWallStrip(buf, 0, h, 4, 0, 0, FogSettings{}, 10)

	p := buf.At(0, 2)
	assert.Equal(t, uint8((100&0xFE)>>1+(50&0xFE)>>1), p.R)
}
