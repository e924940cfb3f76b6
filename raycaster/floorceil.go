package raycaster

import (
	"math"

	"github.com/FSMargoo/RCEngine/geom"
)

// castFloorCeiling fills the floor (below horizon) and, when sky is
// disabled, the ceiling (above horizon) rows for one frame. Grounded
// on RCRenderer::RenderFloor/RenderCeiling: horizon-outward scanline
// iteration with per-pixel linear interpolation between the two edge
// rays, darkened and fog-blended identically for floor and ceiling
// (§9 Open Question 1 — a deliberate style choice, not a bug, carried
// through unchanged per that Open Question's guidance not to guess).
func castFloorCeiling(buf *PixelBuffer, s *Scene, cam *Camera) {
	w, h := buf.W, buf.H
	pitchPx := cam.PitchPixels(h)
	horizon := h/2 + pitchPx

	rayLeft := cam.RayLeft()
	rayRight := cam.RayRight()

	cameraZFloor := float64(h)/2 + cam.Z
	cameraZCeiling := float64(h)/2 - cam.Z

	fogConst := s.FogConstant()

	if s.Skybox.Enabled {
		castSkybox(buf, s, cam, horizon)
	} else {
		// Runs one row past the horizon (matching RenderCeiling's
		// Height/2+Pitch+1 start, walked downward) so the horizon row itself
		// is painted — the floor loop below starts its real output at
		// horizon+1 too (relative==0 at y==horizon is a no-op), so without
		// this the horizon row is never written by either background pass.
		for y := 0; y <= horizon+1 && y < h; y++ {
			relative := horizon - y + 2
			castHorizontalRow(buf, s.Ceiling, s, cam, w, y, relative, cameraZCeiling, rayLeft, rayRight, fogConst, true)
		}
	}

	for y := horizon; y < h; y++ {
		castHorizontalRow(buf, s.Floor, s, cam, w, y, y-horizon, cameraZFloor, rayLeft, rayRight, fogConst, false)
	}
}

func castHorizontalRow(buf *PixelBuffer, tex *Texture, s *Scene, cam *Camera, w, y, relative int, cameraZ float64, rayLeft, rayRight geom.Vector2, fogConst float64, ceiling bool) {
	if relative <= 0 || tex == nil {
		return
	}
	dist := cameraZ / float64(relative)

	floorStep := rayRight.Sub(rayLeft).Scale(dist / float64(w))
	world := cam.Pos.Add(rayLeft.Scale(dist))

	for x := 0; x < w; x++ {
		tx := int(fracPart(world.X) * float64(tex.W))
		ty := int(fracPart(world.Y) * float64(tex.H))
		c := tex.At(tx, ty).darkenNS()

		if s.Fog.Enabled {
			f := dist / fogConst * s.Fog.Level
			c = fogMix(c, s.Fog.Color, f)
		}
		buf.Set(x, y, c)
		world = world.Add(floorStep)
	}
}

func fracPart(v float64) float64 {
	f := v - math.Floor(v)
	if f < 0 {
		f += 1
	}
	return f
}
