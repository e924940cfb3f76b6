package raycaster

// compositeColumn walks hits back-to-front (farthest first), drawing
// floor/sky that's already in the buffer, interleaving far-to-near
// sprites between hits, and finally drawing any sprites nearer than
// every hit. Grounded on RCRenderer.cpp's compositor loop: the
// farthest-first order plus the "while nearer sprite is farther than
// the next hit, draw it" interleave is what makes glass/strip
// transparency layer correctly against whatever sits behind it.
func compositeColumn(buf *PixelBuffer, x int, hits []Hit, sprites []*projectedSprite, spriteCursor *int, screenH int, pitchPx int, camZ float64, fog FogSettings, fogConst float64) {
	for i := len(hits) - 1; i >= 0; i-- {
		h := hits[i]

		for *spriteCursor < len(sprites) && sprites[*spriteCursor].transformY > h.PerpDist {
			renderSpriteColumn(buf, sprites[*spriteCursor], x, fog)
			*spriteCursor++
		}

		drawWallStrip(buf, x, h, screenH, pitchPx, camZ, fog, fogConst)
	}

	for *spriteCursor < len(sprites) {
		renderSpriteColumn(buf, sprites[*spriteCursor], x, fog)
		*spriteCursor++
	}
}

func drawWallStrip(buf *PixelBuffer, x int, h Hit, screenH int, pitchPx int, camZ float64, fog FogSettings, fogConst float64) {
	if h.PerpDist <= 0 {
		return
	}
	tex := h.Unit.Texture
	if tex == nil {
		return
	}

	lineH := float64(screenH) / h.PerpDist
	drawStart := -lineH/2 + float64(screenH)/2 + float64(pitchPx) + camZ/h.PerpDist
	drawEnd := drawStart + lineH

	texX := int(h.WallX * float64(tex.W))

	if h.Unit.Type == Door {
		texX -= tex.W - int(h.Unit.Door.Offset)
		if texX < 0 {
			return
		}
	}

	startY := maxInt(int(drawStart), 0)
	endY := minInt(int(drawEnd), screenH)

	for y := startY; y < endY; y++ {
		d := float64(y) - drawStart
		texY := int(d / lineH * float64(tex.H))
		if texY < 0 || texY >= tex.H {
			continue
		}
		c := tex.At(texX, texY)
		if !c.Opaque() {
			continue
		}

		switch h.Side {
		case SideNS:
			c = c.darkenNS()
		case SideDiag:
			c = c.darkenDiag()
		}

		if fog.Enabled {
			f := h.PerpDist / fogConst * fog.Level
			c = fogMix(c, fog.Color, f)
		}

		if h.Unit.Type == Glass {
			dst := buf.At(x, y)
			c = blendGlass(c, dst)
		}

		buf.Set(x, y, c)
	}
}
