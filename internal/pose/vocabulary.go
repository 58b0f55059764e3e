// Package pose turns pose-classifier output into catcher lane commands.
// It never talks to a camera or a model; it only sees class labels.
package pose

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/vovakirdan/catch-zone/internal/config"
	"github.com/vovakirdan/catch-zone/internal/core"
)

// entry binds folded label fragments to a lane.
type entry struct {
	lane   core.Lane
	tokens []string
}

// Vocabulary maps classifier labels to lanes by case-insensitive substring
// containment. Lanes are checked in the order left, right, center, so a label
// containing tokens for several lanes resolves to the first match.
type Vocabulary struct {
	entries []entry
}

// NewVocabulary builds a vocabulary from config. Empty tokens are skipped.
func NewVocabulary(cfg config.VocabularyConfig) *Vocabulary {
	return &Vocabulary{
		entries: []entry{
			{lane: core.LaneLeft, tokens: foldAll(cfg.Left)},
			{lane: core.LaneRight, tokens: foldAll(cfg.Right)},
			{lane: core.LaneCenter, tokens: foldAll(cfg.Center)},
		},
	}
}

// DefaultVocabulary returns the built-in English/Korean vocabulary.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(config.Default().Vocabulary)
}

// Match returns the lane selected by label, or false if no token matches.
func (v *Vocabulary) Match(label string) (core.Lane, bool) {
	folded := fold(label)
	if folded == "" {
		return core.LaneCenter, false
	}
	for _, e := range v.entries {
		for _, tok := range e.tokens {
			if strings.Contains(folded, tok) {
				return e.lane, true
			}
		}
	}
	return core.LaneCenter, false
}

// Tokens returns the folded tokens registered for a lane.
func (v *Vocabulary) Tokens(lane core.Lane) []string {
	for _, e := range v.entries {
		if e.lane == lane {
			return append([]string(nil), e.tokens...)
		}
	}
	return nil
}

func foldAll(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if f := fold(tok); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// fold applies Unicode case folding. A Caser is stateful, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
