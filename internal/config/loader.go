package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Catch Zone configuration.
// Search order: customPath -> ~/.catchzone/catchzone.yaml -> ./configs/catchzone.yaml -> embedded default.
// Files are decoded over Default(), so a partial file only overrides the keys it sets.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("catchzone.yaml"), filepath.Join("configs", "catchzone.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catchzone", filename)
}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}

	if c.Session.LevelSeconds <= 0 {
		add("session.level_seconds must be positive, got %d", c.Session.LevelSeconds)
	}
	if c.Session.MaxMisses <= 0 {
		add("session.max_misses must be positive, got %d", c.Session.MaxMisses)
	}
	if !c.Session.StartLane.Valid() {
		add("session.start_lane is not a lane")
	}

	if c.Drop.Base <= 0 || c.Drop.Min <= 0 || c.Drop.Step < 0 {
		add("drop values must be positive (base=%v step=%v min=%v)", c.Drop.Base, c.Drop.Step, c.Drop.Min)
	}
	if c.Drop.Min > c.Drop.Base {
		add("drop.min %v exceeds drop.base %v", c.Drop.Min, c.Drop.Base)
	}

	if c.Spawn.MinFactor <= 0 || c.Spawn.MaxFactor < c.Spawn.MinFactor {
		add("spawn factors must satisfy 0 < min_factor <= max_factor (got %v, %v)", c.Spawn.MinFactor, c.Spawn.MaxFactor)
	}
	if c.Spawn.HazardChance < 0 || c.Spawn.HazardChance >= 1 || math.IsNaN(c.Spawn.HazardChance) {
		add("spawn.hazard_chance must be in [0, 1), got %v", c.Spawn.HazardChance)
	}

	if c.Catch.Threshold <= 0 || c.Catch.Threshold >= 100 {
		add("catch.threshold must be in (0, 100), got %v", c.Catch.Threshold)
	}

	hazards, collectibles := 0, 0
	seen := make(map[string]bool, len(c.Items))
	for _, item := range c.Items {
		if item.Name == "" {
			add("item with empty name")
			continue
		}
		if seen[item.Name] {
			add("duplicate item %q", item.Name)
		}
		seen[item.Name] = true
		if item.Score < 0 {
			add("item %q has negative score %d", item.Name, item.Score)
		}
		if item.Hazard {
			hazards++
		} else {
			collectibles++
		}
	}
	if hazards != 1 {
		add("exactly one hazard item required, got %d", hazards)
	}
	if collectibles == 0 {
		add("at least one collectible item required")
	}

	if len(c.Vocabulary.Left) == 0 || len(c.Vocabulary.Center) == 0 || len(c.Vocabulary.Right) == 0 {
		add("vocabulary needs at least one token per lane")
	}

	if c.Stabilizer.Frames < 1 {
		add("stabilizer.frames must be at least 1, got %d", c.Stabilizer.Frames)
	}
	if c.Stabilizer.Threshold < 0 || c.Stabilizer.Threshold > 1 {
		add("stabilizer.threshold must be in [0, 1], got %v", c.Stabilizer.Threshold)
	}

	return errors.Join(errs...)
}
