package raycaster

import "math"

// castSkybox draws the cylindrical panoramic sky in place of the
// ceiling, for rows [0, horizon). Grounded on RCRenderer::RenderSkyBox:
// ray azimuth maps to a horizontal texture coordinate, and the
// vertical coordinate slides with pitch so tex.H rows span
// (H/2 + PitchMax) screen rows — the skybox "slides" with pitch.
// Drawn once as a flat raster background; no fog.
func castSkybox(buf *PixelBuffer, s *Scene, cam *Camera, horizon int) {
	tex := s.Sky
	if tex == nil {
		return
	}
	w, h := buf.W, buf.H
	pitchPx := cam.PitchPixels(h)
	pitchMax := float64(h) / 4

	for x := 0; x < w; x++ {
		ray := cam.RayForColumn(x, w)
		azimuth := -math.Atan2(ray.Y, ray.X)
		texX := azimuth * (float64(tex.W) / (2 * math.Pi)) * float64(s.Skybox.Repeats)
		for texX < 0 {
			texX += float64(tex.W)
		}
		for texX >= float64(tex.W) {
			texX -= float64(tex.W)
		}

		for y := 0; y < horizon; y++ {
			deltaTexY := float64(tex.H) * (float64(h)/2 + float64(pitchPx)) / (float64(h)/2 + pitchMax)
			texY := int(float64(y) * deltaTexY / float64(horizon))
			buf.Set(x, y, tex.At(int(texX), texY))
		}
	}
}
