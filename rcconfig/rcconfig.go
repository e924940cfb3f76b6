// Package rcconfig loads renderer tuning constants from a TOML file,
// following noisetorch-NoiseTorch/config.go's load-with-defaults
// pattern: a defaulted struct is populated from whatever keys the file
// provides, so a missing file or missing key never breaks scene parity.
package rcconfig

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tuning constants named in §6.
type Config struct {
	MoveSpeed   float64 `toml:"move_speed"`
	RotateSpeed float64 `toml:"rotate_speed"`
	PitchSpeed  float64 `toml:"pitch_speed"`
	Reach       float64 `toml:"reach"`
	FovFactor   float64 `toml:"fov_factor"`

	DoorSpeed int `toml:"door_speed"`

	FogLevel float64 `toml:"fog_level"`
	FogColor uint32  `toml:"fog_color"`

	SuperResolution bool `toml:"super_resolution"`
}

// Default returns the tuning constants from §6: move speed 4.5,
// rotate speed pi/2, pitch speed 1.8, reach 2.2, FOV factor 0.66
// (|plane| = 0.66*|dir|), door speed 40, fog disabled at level 0 with
// the original engine's default color 0xA09EE7.
func Default() Config {
	return Config{
		MoveSpeed:   4.5,
		RotateSpeed: math.Pi / 2,
		PitchSpeed:  1.8,
		Reach:       2.2,
		FovFactor:   0.66,
		DoorSpeed:   40,
		FogLevel:    0,
		FogColor:    0x00A09EE7,
	}
}

// Load reads path as TOML into a Default()-seeded Config. A missing
// file is not an error — Default() is returned unchanged, matching
// the "init failures are fatal but absence-of-config is not a failure"
// stance implied by §7's error taxonomy (config is a convenience, not
// a required input).
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
