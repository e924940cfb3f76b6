package raycaster

import (
	"math"

	"github.com/FSMargoo/RCEngine/geom"
)

// Side tags which face of a cell a Hit struck.
type Side int

const (
	SideNS Side = iota // crossed an X-axis grid line (the cell's N/S face)
	SideEW             // crossed a Y-axis grid line (the cell's E/W face)
	SideDiag           // struck a diagonal half-wall
)

// Hit is one recorded ray/cell intersection along a column's DDA walk,
// in traversal order (nearest first). The compositor consumes these
// back-to-front (last to first).
type Hit struct {
	PerpDist   float64
	WallX      float64
	MapX, MapY int
	Side       Side
	Unit       *MapUnit
	RayDir     geom.Vector2
}

// castColumn runs the DDA walk for one screen ray and returns the
// ordered hit list, nearest first. This is the hard part grounded on
// RCRenderer::RayCasting: axis-stepping DDA with mid-cell thin-wall
// resolution and diagonal half-wall intersection.
func castColumn(m *Map, pos geom.Vector2, rayDir geom.Vector2) []Hit {
	var hits []Hit

	mapX, mapY := int(math.Floor(pos.X)), int(math.Floor(pos.Y))

	deltaDistX := math.Abs(1 / safeDiv(rayDir.X))
	deltaDistY := math.Abs(1 / safeDiv(rayDir.Y))

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if rayDir.X < 0 {
		stepX = -1
		sideDistX = (pos.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - pos.X) * deltaDistX
	}
	if rayDir.Y < 0 {
		stepY = -1
		sideDistY = (pos.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - pos.Y) * deltaDistY
	}

	maxSteps := m.Diameter() * 2
	var side Side

	for step := 0; step < maxSteps; step++ {
		if !m.InBounds(mapX, mapY) {
			break
		}

		// advance the axis with the smaller sideDist. Stepping X is
		// labeled NS (the wall crossed runs north-south) and stepping Y
		// is labeled EW, matching RCRenderer::RayCasting exactly.
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = SideNS
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = SideEW
		}

		if !m.InBounds(mapX, mapY) {
			break
		}
		unit := m.At(mapX, mapY)

		switch unit.Type {
		case Air:
			continue

		case Wall:
			perp := perpDistFor(side, sideDistX, sideDistY, deltaDistX, deltaDistY)
			hits = append(hits, Hit{
				PerpDist: perp,
				WallX:    wallXFor(side, pos, rayDir, perp),
				MapX:     mapX, MapY: mapY,
				Side: side, Unit: unit, RayDir: rayDir,
			})
			return hits

		case Door, Strip, Glass:
			var delta, stepSideDist, otherSideDist float64
			if side == SideNS {
				delta = deltaDistX
				stepSideDist = sideDistX
				otherSideDist = sideDistY
			} else {
				delta = deltaDistY
				stepSideDist = sideDistY
				otherSideDist = sideDistX
			}
			tentative := stepSideDist - 0.5*delta

			if otherSideDist < tentative {
				// ray crosses the other boundary before this mid-line
				continue
			}

			hits = append(hits, Hit{
				PerpDist: tentative,
				WallX:    wallXFor(side, pos, rayDir, tentative),
				MapX:     mapX, MapY: mapY,
				Side: side, Unit: unit, RayDir: rayDir,
			})

			if unit.Type == Door && unit.Door.Closed() {
				return hits
			}
			// Strip/Glass never terminate; open/ajar Door doesn't either
			continue

		case DiagLR, DiagRL:
			k := 1.0
			if unit.Type == DiagRL {
				k = -1.0
			}
			perp, wallX, ok := diagIntersect(pos, rayDir, mapX, mapY, k)
			if !ok {
				continue
			}
			hits = append(hits, Hit{
				PerpDist: perp,
				WallX:    wallX,
				MapX:     mapX, MapY: mapY,
				Side: SideDiag, Unit: unit, RayDir: rayDir,
			})
			continue
		}
	}

	return hits
}

func safeDiv(v float64) float64 {
	if v == 0 {
		return 1e-20
	}
	return v
}

func perpDistFor(side Side, sideDistX, sideDistY, deltaDistX, deltaDistY float64) float64 {
	if side == SideNS {
		return sideDistX - deltaDistX
	}
	return sideDistY - deltaDistY
}

// wallXFor computes the fractional hit coordinate along the struck
// face per §4.1's wall_x convention, and flips it to preserve texture
// handedness for the NS(+x)/EW(-y) ray cases. The component used is the
// axis opposite the one stepped: an NS hit (X-axis stepped) reads its
// position off Y, and vice versa.
func wallXFor(side Side, pos geom.Vector2, rayDir geom.Vector2, perpDist float64) float64 {
	var wallX float64
	if side == SideNS {
		wallX = pos.Y + perpDist*rayDir.Y
	} else {
		wallX = pos.X + perpDist*rayDir.X
	}
	wallX -= math.Floor(wallX)

	if side == SideNS && rayDir.X > 0 {
		wallX = 1 - wallX
	}
	if side == SideEW && rayDir.Y < 0 {
		wallX = 1 - wallX
	}
	return wallX
}

// diagIntersect solves the ray against the cell-diagonal line
// y - mapY = k*(x - mapX) + b spanning the unit cell, per §4.1 step 4.
// b is chosen so the line passes through the cell's near corner: for
// k=1 (DiagLR, down-right) the line runs from (mapX,mapY) to
// (mapX+1,mapY+1); for k=-1 (DiagRL) from (mapX,mapY+1) to (mapX+1,mapY).
func diagIntersect(pos, rayDir geom.Vector2, mapX, mapY int, k float64) (perpDist, wallX float64, ok bool) {
	denom := rayDir.Y - k*rayDir.X
	if denom == 0 {
		return 0, 0, false
	}
	var b, distance float64
	if k > 0 {
		b = 0
		distance = pos.X - float64(mapX) - pos.Y + float64(mapY)
	} else {
		b = 1
		distance = float64(mapX) - pos.X - pos.Y + float64(mapY) + 1
	}
	perpDist = (float64(mapY)+b+k*(pos.X-float64(mapX))-pos.Y) / denom
	hitX := pos.X + rayDir.X*perpDist
	wallX = hitX - float64(mapX)
	if wallX < 0 || wallX >= 1 {
		return 0, 0, false
	}
	if distance < 0 {
		wallX = 1 - wallX
	}
	return perpDist, wallX, true
}
