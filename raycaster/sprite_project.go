package raycaster

import (
	"sort"

	"github.com/FSMargoo/RCEngine/geom"
)

// projectedSprite is the per-frame transient result of billboarding a
// Sprite against the current camera. Grounded on RCRenderer::RayCasting's
// sprite-transform block and ovk-raycaster-go's castSprite loop shape.
type projectedSprite struct {
	sprite *Sprite

	transformY float64

	// unclipped screen-space extent of the billboard
	startX, endX int
	startY, endY int

	// clipped extent actually visible, used to bound the column loop
	clipStartX, clipEndX int

	fogPerFrag float64
}

// projectSprites computes the billboard transform for every sprite in
// the scene, culls those behind the camera or fully off-screen, and
// returns them sorted by descending transformY (farthest first) as
// §4.4 requires for the compositor's back-to-front interleave.
func projectSprites(s *Scene, cam *Camera, screenW, screenH int, fogConst float64) []*projectedSprite {
	invDet := 1 / (cam.Plane.X*cam.Dir.Y - cam.Dir.X*cam.Plane.Y)
	pitchPx := cam.PitchPixels(screenH)

	var out []*projectedSprite
	for _, sp := range s.Sprites {
		rel := geom.Vector2{X: sp.X - cam.Pos.X, Y: sp.Y - cam.Pos.Y}

		transformX := invDet * (cam.Dir.Y*rel.X - cam.Dir.X*rel.Y)
		transformY := invDet * (-cam.Plane.Y*rel.X + cam.Plane.X*rel.Y)
		if transformY <= 0 {
			continue
		}

		screenX := int((float64(screenW) / 2) * (1 + transformX/transformY))

		size := int(absF(float64(screenH) / transformY))

		startY := -size/2 + screenH/2 + pitchPx + int((sp.Z+cam.Z)/transformY)
		endY := startY + size

		startX := -size/2 + screenX
		endX := startX + size

		if endX < 0 || startX >= screenW || size <= 0 {
			continue
		}

		ps := &projectedSprite{
			sprite:     sp,
			transformY: transformY,
			startX:     startX, endX: endX,
			startY: startY, endY: endY,
			clipStartX: maxInt(startX, 0),
			clipEndX:   minInt(endX, screenW),
			fogPerFrag: transformY / fogConst,
		}
		out = append(out, ps)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].transformY > out[j].transformY
	})
	return out
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// renderSpriteColumn draws one screen column of a projected sprite's
// strip, skipping alpha-zero texels and applying fog. Texture
// coordinates are derived straight from the column/row's position
// within the sprite's unclipped screen extent, equivalent to the
// original's delta/count integer-stepping accumulator but computed
// per-pixel so columns can be cast independently/in parallel.
func renderSpriteColumn(buf *PixelBuffer, ps *projectedSprite, x int, fog FogSettings) {
	tex := ps.sprite.Texture
	if tex == nil || x < ps.clipStartX || x >= ps.clipEndX {
		return
	}
	width := ps.endX - ps.startX
	height := ps.endY - ps.startY
	if width <= 0 || height <= 0 {
		return
	}

	texX := (x - ps.startX) * tex.W / width
	if texX < 0 || texX >= tex.W {
		return
	}

	yStart := maxInt(ps.startY, 0)
	yEnd := minInt(ps.endY, buf.H)
	for y := yStart; y < yEnd; y++ {
		texY := (y - ps.startY) * tex.H / height
		if texY < 0 || texY >= tex.H {
			continue
		}
		c := tex.At(texX, texY)
		if !c.Opaque() {
			continue
		}
		if fog.Enabled {
			c = fogMix(c, fog.Color, ps.fogPerFrag*fog.Level)
		}
		buf.Set(x, y, c)
	}
}
