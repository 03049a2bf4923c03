package rain

import (
	"strconv"

	"digirain/internal/core"
)

// Params holds the fixed speed, trail and probability settings for the rain.
type Params struct {
	// SpeedMin and SpeedMax bound the rows a stream falls per tick.
	SpeedMin float32
	SpeedMax float32

	// TrailMin and TrailMax bound the trailing cells behind a head, inclusive.
	TrailMin int
	TrailMax int

	// SpawnChance is the probability of a new stream per column per tick.
	SpawnChance float32
	// MutateChance is the probability of a stream glyph changing per tick.
	MutateChance float32
}

// DefaultParams returns the standard rain parameters.
func DefaultParams() Params {
	return Params{
		SpeedMin:     0.3,
		SpeedMax:     1.2,
		TrailMin:     8,
		TrailMax:     50,
		SpawnChance:  0.015,
		MutateChance: 0.03,
	}
}

// Snapshot reports the parameters for logging.
func (p Params) Snapshot() core.ParameterSnapshot {
	f := func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name:    "motion",
			Summary: "rows per tick",
			Params: []core.Parameter{
				{Key: "speed_min", Label: "Speed min", Type: core.ParamTypeFloat, Value: f(p.SpeedMin)},
				{Key: "speed_max", Label: "Speed max", Type: core.ParamTypeFloat, Value: f(p.SpeedMax)},
			},
		},
		{
			Name:    "trail",
			Summary: "cells behind the head",
			Params: []core.Parameter{
				{Key: "trail_min", Label: "Trail min", Type: core.ParamTypeInt, Value: strconv.Itoa(p.TrailMin)},
				{Key: "trail_max", Label: "Trail max", Type: core.ParamTypeInt, Value: strconv.Itoa(p.TrailMax)},
			},
		},
		{
			Name:    "chance",
			Summary: "per tick probabilities",
			Params: []core.Parameter{
				{Key: "spawn_chance", Label: "Spawn", Type: core.ParamTypeFloat, Value: f(p.SpawnChance), Description: "new stream per column"},
				{Key: "mutate_chance", Label: "Mutate", Type: core.ParamTypeFloat, Value: f(p.MutateChance), Description: "glyph swap per stream cell"},
			},
		},
	}}
}

// Source supplies the random draws the engine makes each tick.
type Source interface {
	// Float32 returns a uniform value in [0, 1).
	Float32() float32
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// Config controls the engine dimensions and randomness.
type Config struct {
	Cols   int
	Rows   int
	Glyphs int

	Seed int64

	// Source overrides the seeded RNG when set. Reset does not reseed it.
	Source Source

	Params Params
}

// DefaultConfig returns the standard configuration for a grid of the given
// size using the full alphabet.
func DefaultConfig(cols, rows int) Config {
	return Config{
		Cols:   cols,
		Rows:   rows,
		Glyphs: AlphabetSize(),
		Seed:   1337,
		Params: DefaultParams(),
	}
}
