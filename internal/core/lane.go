package core

import (
	"fmt"
	"strings"
)

// Lane is one of the three columns items fall through and the catcher occupies.
// Lanes carry no ordering semantics; collision is plain equality.
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight
)

// LaneCount is the number of lanes on the board.
const LaneCount = 3

// Lanes returns all lanes in board order (left to right).
func Lanes() []Lane {
	return []Lane{LaneLeft, LaneCenter, LaneRight}
}

// String returns the canonical upper-case lane name.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "LEFT"
	case LaneCenter:
		return "CENTER"
	case LaneRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the three board lanes.
func (l Lane) Valid() bool {
	return l >= LaneLeft && l <= LaneRight
}

// ParseLane converts a lane name ("left", "CENTER", ...) to a Lane.
func ParseLane(s string) (Lane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return LaneLeft, nil
	case "center":
		return LaneCenter, nil
	case "right":
		return LaneRight, nil
	}
	return LaneCenter, fmt.Errorf("core: unknown lane %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Lane) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("core: invalid lane %d", int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so lanes can be written
// by name in YAML config files.
func (l *Lane) UnmarshalText(text []byte) error {
	parsed, err := ParseLane(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
