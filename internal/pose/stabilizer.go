package pose

import "github.com/vovakirdan/catch-zone/internal/config"

// Prediction is one class probability from a single classifier frame.
type Prediction struct {
	ClassName   string
	Probability float64
}

// Result is the stabilizer output for one frame.
// ClassName is empty until a class has been stable for enough frames.
type Result struct {
	ClassName   string
	Probability float64
}

// Stabilizer suppresses classifier flicker. A class is reported only after it
// has been the top prediction, at or above the threshold, for a run of
// consecutive frames. A low-confidence frame breaks the run.
type Stabilizer struct {
	threshold float64
	frames    int

	current string  // class of the current run
	run     int     // length of the current run
	prob    float64 // latest probability of the current class
}

// NewStabilizer creates a stabilizer. frames below 1 are treated as 1.
func NewStabilizer(threshold float64, frames int) *Stabilizer {
	if frames < 1 {
		frames = 1
	}
	return &Stabilizer{threshold: threshold, frames: frames}
}

// NewStabilizerFromConfig creates a stabilizer from config values.
func NewStabilizerFromConfig(cfg config.StabilizerConfig) *Stabilizer {
	return NewStabilizer(cfg.Threshold, cfg.Frames)
}

// Stabilize consumes one frame of predictions.
func (s *Stabilizer) Stabilize(preds []Prediction) Result {
	top, ok := topPrediction(preds)
	if !ok || top.Probability < s.threshold {
		s.current = ""
		s.run = 0
		return Result{}
	}

	if top.ClassName == s.current {
		s.run++
	} else {
		s.current = top.ClassName
		s.run = 1
	}
	s.prob = top.Probability

	if s.run < s.frames {
		return Result{}
	}
	return Result{ClassName: s.current, Probability: s.prob}
}

// Reset forgets the current run.
func (s *Stabilizer) Reset() {
	s.current = ""
	s.run = 0
	s.prob = 0
}

// topPrediction returns the highest-probability prediction; the first wins ties.
func topPrediction(preds []Prediction) (Prediction, bool) {
	if len(preds) == 0 {
		return Prediction{}, false
	}
	best := preds[0]
	for _, p := range preds[1:] {
		if p.Probability > best.Probability {
			best = p
		}
	}
	return best, best.ClassName != ""
}
