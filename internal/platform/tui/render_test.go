package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/catch-zone/internal/catchzone"
	"github.com/vovakirdan/catch-zone/internal/core"
)

func TestBoardSize(t *testing.T) {
	tests := []struct {
		w, h        int
		rows, laneW int
	}{
		{80, 24, 12, 16},
		{40, 10, minBoardRows, 11},
		{10, 5, minBoardRows, minLaneWidth},
		{300, 100, maxBoardRows, maxLaneWidth},
	}
	for _, tt := range tests {
		rows, laneW := boardSize(tt.w, tt.h)
		if rows != tt.rows || laneW != tt.laneW {
			t.Errorf("boardSize(%d, %d) = %d, %d; want %d, %d", tt.w, tt.h, rows, laneW, tt.rows, tt.laneW)
		}
	}
}

func TestItemRow(t *testing.T) {
	tests := []struct {
		progress float64
		want     int
	}{
		{0, 0},
		{50, 5},
		{85, 9},
		{100, 11},
		{130, 11},
	}
	for _, tt := range tests {
		if got := itemRow(tt.progress, 12); got != tt.want {
			t.Errorf("itemRow(%v) = %d, want %d", tt.progress, got, tt.want)
		}
	}
}

func TestCatcherColumn(t *testing.T) {
	laneW := 10
	left := catcherColumn(0, laneW)
	center := catcherColumn(1, laneW)
	right := catcherColumn(2, laneW)
	if !(left < center && center < right) {
		t.Errorf("Columns not increasing: %d %d %d", left, center, right)
	}
	if got := catcherColumn(-5, laneW); got != 0 {
		t.Errorf("Overshoot left should clamp to 0, got %d", got)
	}
	boardW := core.LaneCount*laneW + core.LaneCount - 1
	if got := catcherColumn(9, laneW); got != boardW-len(catcherToken) {
		t.Errorf("Overshoot right should clamp to %d, got %d", boardW-len(catcherToken), got)
	}
}

func TestRenderBoard(t *testing.T) {
	s := catchzone.Snapshot{
		Items: []catchzone.ItemView{
			{ID: 1, Kind: "apple", Lane: core.LaneLeft, Progress: 10, Token: "A"},
			{ID: 2, Kind: "bomb", Lane: core.LaneRight, Progress: 50, Token: "B", Hazard: true},
			{ID: 3, Kind: "pear", Lane: core.LaneCenter, Progress: 90},
		},
	}
	board := renderBoard(s, 1, 10, 8, 85)

	for _, want := range []string{"A", "B", "pear", catcherToken, "·"} {
		if !strings.Contains(board, want) {
			t.Errorf("Board missing %q:\n%s", want, board)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	tests := []struct {
		reason catchzone.EndReason
		want   string
	}{
		{catchzone.EndHazardCaught, "bomb"},
		{catchzone.EndFruitMissed, "misses"},
		{catchzone.EndNone, "stopped"},
	}
	for _, tt := range tests {
		got := renderGameOver(catchzone.Result{Score: 10, Level: 1, Reason: tt.reason})
		if !strings.Contains(got, tt.want) {
			t.Errorf("renderGameOver(%v) = %q, want it to mention %q", tt.reason, got, tt.want)
		}
	}
}
