// Package config provides YAML-based configuration loading and the difficulty
// curve for Catch Zone.
package config

import "github.com/vovakirdan/catch-zone/internal/core"

// Config contains every tunable of a Catch Zone session.
type Config struct {
	Session    SessionConfig    `yaml:"session"`
	Drop       DropConfig       `yaml:"drop"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Catch      CatchConfig      `yaml:"catch"`
	Items      []ItemConfig     `yaml:"items"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Stabilizer StabilizerConfig `yaml:"stabilizer"`
}

// SessionConfig defines level pacing and the game-over rule.
type SessionConfig struct {
	LevelSeconds int       `yaml:"level_seconds"` // Coarse ticks per level
	MaxMisses    int       `yaml:"max_misses"`    // Missed collectibles that end the session
	StartLane    core.Lane `yaml:"start_lane"`    // Catcher lane at session start
}

// DropConfig defines how long an item takes to fall, per level.
// All values are in seconds.
type DropConfig struct {
	Base float64 `yaml:"base"` // Drop duration at level 1
	Step float64 `yaml:"step"` // Reduction per level
	Min  float64 `yaml:"min"`  // Floor
}

// SpawnConfig defines the spawner cadence and the hazard weight.
type SpawnConfig struct {
	MinFactor    float64 `yaml:"min_factor"`    // Lower bound of delay, as a fraction of drop duration
	MaxFactor    float64 `yaml:"max_factor"`    // Upper bound of delay, as a fraction of drop duration
	HazardChance float64 `yaml:"hazard_chance"` // Probability that a spawn is the hazard
}

// CatchConfig defines the catch window.
type CatchConfig struct {
	Threshold float64 `yaml:"threshold"` // Progress (0-100) from which a lane match is a catch
}

// ItemConfig describes one item kind.
type ItemConfig struct {
	Name   string `yaml:"name"`
	Score  int    `yaml:"score"`
	Token  string `yaml:"token"`
	Hazard bool   `yaml:"hazard,omitempty"`
}

// VocabularyConfig lists the label fragments that select each lane.
// Matching is case-insensitive substring containment, checked left, right, center.
type VocabularyConfig struct {
	Left   []string `yaml:"left"`
	Center []string `yaml:"center"`
	Right  []string `yaml:"right"`
}

// StabilizerConfig tunes smoothing of classifier output before it reaches the engine.
type StabilizerConfig struct {
	Threshold float64 `yaml:"threshold"` // Minimum probability for a confident frame
	Frames    int     `yaml:"frames"`    // Consecutive confident frames required
}
