package config

import (
	_ "embed"

	"github.com/vovakirdan/catch-zone/internal/core"
)

//go:embed defaults/catchzone.yaml
var defaultYAML []byte

// Default returns the built-in Catch Zone configuration.
func Default() Config {
	return Config{
		Session: SessionConfig{
			LevelSeconds: 20,
			MaxMisses:    2,
			StartLane:    core.LaneCenter,
		},
		Drop: DropConfig{
			Base: 2.0,
			Step: 0.2,
			Min:  0.6,
		},
		Spawn: SpawnConfig{
			MinFactor:    0.6,
			MaxFactor:    0.8,
			HazardChance: 0.1,
		},
		Catch: CatchConfig{
			Threshold: 85,
		},
		Items: []ItemConfig{
			{Name: "apple", Score: 100, Token: "🍎"},
			{Name: "pear", Score: 150, Token: "🍐"},
			{Name: "orange", Score: 200, Token: "🍊"},
			{Name: "bomb", Score: 0, Token: "💣", Hazard: true},
		},
		Vocabulary: VocabularyConfig{
			Left:   []string{"left", "왼쪽"},
			Center: []string{"center", "가운데"},
			Right:  []string{"right", "오른쪽"},
		},
		Stabilizer: StabilizerConfig{
			Threshold: 0.7,
			Frames:    3,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
