package raycaster

import "fmt"

// FogSettings controls uniform depth fog. Color default matches the
// original engine's RCScene default (0xA09EE7) so that enabling fog
// later doesn't require the caller to also pick a color.
type FogSettings struct {
	Enabled bool
	Color   Pixel
	Level   float64
}

func defaultFogSettings() FogSettings {
	c := Unpack(0x00A09EE7)
	c.A = 0xFF
	return FogSettings{Enabled: false, Color: c, Level: 0}
}

// SkySettings controls the optional panoramic skybox.
type SkySettings struct {
	Enabled bool
	Repeats int
}

// Scene aggregates a Map, its floor/ceiling/sky textures, fog and sky
// settings, and the sprite list — grounded on RCScene.h/.cpp.
type Scene struct {
	Map *Map

	Floor   *Texture
	Ceiling *Texture
	Sky     *Texture

	Fog    FogSettings
	Skybox SkySettings

	Sprites []*Sprite
}

// NewScene builds a Scene referencing m, with fog disabled, skybox
// disabled, and skyboxRepeats=1 by default (RCScene's defaults).
func NewScene(m *Map) (*Scene, error) {
	if m == nil {
		return nil, fmt.Errorf("raycaster: Scene requires a non-nil Map")
	}
	return &Scene{
		Map:    m,
		Fog:    defaultFogSettings(),
		Skybox: SkySettings{Enabled: false, Repeats: 1},
	}, nil
}

// CheckValid mirrors RCScene::CheckValid: a scene is renderable only
// if it has a floor texture, a map, and either a sky texture (when the
// skybox is enabled) or a ceiling texture otherwise.
func (s *Scene) CheckValid() bool {
	if s.Map == nil || s.Floor == nil {
		return false
	}
	if s.Skybox.Enabled {
		return s.Sky != nil
	}
	return s.Ceiling != nil
}

// FogConstant is §6's fog_constant = (map.w + map.h)/2, the scalar
// that makes fog onset map-size-invariant.
func (s *Scene) FogConstant() float64 {
	return float64(s.Map.W+s.Map.H) / 2
}
