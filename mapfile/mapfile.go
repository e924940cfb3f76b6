// Package mapfile parses the ASCII map-file format consumed by the
// core renderer: a width line, a height line, then exactly height
// rows of width characters each. Grounded on original_source/main.cpp's
// inline parser.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/FSMargoo/RCEngine/geom"
	"github.com/FSMargoo/RCEngine/raycaster"
)

// TextureSet supplies the textures a parsed map needs, keyed by the
// map-file character that selects them. Doors get their own texture
// plus a fresh DoorState per cell; wall/diag/strip/glass cells share
// whatever single texture the caller supplies for that type.
type TextureSet struct {
	Wall  *raycaster.Texture
	Diag  *raycaster.Texture
	Door  *raycaster.Texture
	Glass *raycaster.Texture
	Strip *raycaster.Texture
}

// Result is a parsed map plus the spawn position found at 'x'.
type Result struct {
	Map   *raycaster.Map
	Spawn geom.Vector2
}

// Parse reads the map-file format from r using tex to resolve
// textures for non-Air cells.
func Parse(r io.Reader, tex TextureSet) (*Result, error) {
	scanner := bufio.NewScanner(r)

	w, err := readDimension(scanner, "width")
	if err != nil {
		return nil, err
	}
	h, err := readDimension(scanner, "height")
	if err != nil {
		return nil, err
	}

	m, err := raycaster.NewMap(w, h)
	if err != nil {
		return nil, err
	}

	var spawn geom.Vector2
	foundSpawn := false

	for y := 0; y < h; y++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("mapfile: expected %d rows, got %d", h, y)
		}
		row := scanner.Text()
		if len(row) < w {
			return nil, fmt.Errorf("mapfile: row %d shorter than width %d", y, w)
		}
		for x := 0; x < w; x++ {
			unit, isSpawn, err := cellFor(rune(row[x]), tex)
			if err != nil {
				return nil, fmt.Errorf("mapfile: cell (%d,%d): %w", x, y, err)
			}
			m.Set(x, y, unit)
			if isSpawn {
				spawn = geom.Vector2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
				foundSpawn = true
			}
		}
	}

	if !foundSpawn {
		return nil, fmt.Errorf("mapfile: no spawn ('x') cell found")
	}

	return &Result{Map: m, Spawn: spawn}, nil
}

func readDimension(scanner *bufio.Scanner, what string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("mapfile: missing %s line", what)
	}
	v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("mapfile: invalid %s: %w", what, err)
	}
	return v, nil
}

func cellFor(c rune, tex TextureSet) (raycaster.MapUnit, bool, error) {
	switch c {
	case ' ':
		return raycaster.MapUnit{Type: raycaster.Air}, false, nil
	case 'x':
		return raycaster.MapUnit{Type: raycaster.Air}, true, nil
	case 'm':
		u, err := raycaster.NewMapUnit(raycaster.DiagRL, tex.Diag, nil, false)
		return derefUnit(u), false, err
	case 'n':
		u, err := raycaster.NewMapUnit(raycaster.DiagLR, tex.Diag, nil, false)
		return derefUnit(u), false, err
	case 'd':
		door := raycaster.NewDoorState(tex.Door.W)
		u, err := raycaster.NewMapUnit(raycaster.Door, tex.Door, door, false)
		return derefUnit(u), false, err
	case 'g':
		u, err := raycaster.NewMapUnit(raycaster.Glass, tex.Glass, nil, true)
		return derefUnit(u), false, err
	case 's':
		u, err := raycaster.NewMapUnit(raycaster.Strip, tex.Strip, nil, true)
		return derefUnit(u), false, err
	default:
		u, err := raycaster.NewMapUnit(raycaster.Wall, tex.Wall, nil, false)
		return derefUnit(u), false, err
	}
}

func derefUnit(u *raycaster.MapUnit) raycaster.MapUnit {
	if u == nil {
		return raycaster.MapUnit{}
	}
	return *u
}
