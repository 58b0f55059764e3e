package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catch-zone/internal/catchzone"
	"github.com/vovakirdan/catch-zone/internal/core"
)

// Board layout constants
const (
	minBoardRows = 8
	maxBoardRows = 20
	minLaneWidth = 8
	maxLaneWidth = 16
	catcherToken = `\___/`
	chromeRows   = 12 // HUD, time bar, border, feed and help lines around the board
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hudStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	missStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	catchLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	hazardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	catcherStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	feedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// boardSize picks row count and lane width for a terminal size.
func boardSize(width, height int) (rows, laneW int) {
	rows = core.Clamp(height-chromeRows, minBoardRows, maxBoardRows)
	laneW = core.Clamp((width-4)/core.LaneCount-1, minLaneWidth, maxLaneWidth)
	return rows, laneW
}

// itemRow maps progress to a board row.
func itemRow(progress float64, rows int) int {
	row := int(progress / catchzone.ProgressFloor * float64(rows-1))
	return core.Clamp(row, 0, rows-1)
}

// catcherColumn maps the eased catcher position (in lanes) to a column,
// centering the catcher sprite under the lane.
func catcherColumn(x float64, laneW int) int {
	boardW := core.LaneCount*laneW + core.LaneCount - 1
	spriteW := lipgloss.Width(catcherToken)
	col := int(math.Round(x*float64(laneW+1) + float64(laneW-spriteW)/2))
	return core.Clamp(col, 0, boardW-spriteW)
}

// renderBoard draws the lanes, the falling items, the catch line and the
// catcher.
func renderBoard(s catchzone.Snapshot, catcherX float64, rows, laneW int, threshold float64) string {
	// First item wins when two share a cell
	cells := make([][core.LaneCount]*catchzone.ItemView, rows)
	for i := range s.Items {
		it := &s.Items[i]
		if !it.Lane.Valid() {
			continue
		}
		row := itemRow(it.Progress, rows)
		if cells[row][it.Lane] == nil {
			cells[row][it.Lane] = it
		}
	}

	catchRow := itemRow(threshold, rows)
	sep := separatorStyle.Render("┊")

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for _, lane := range core.Lanes() {
			if lane != core.LaneLeft {
				sb.WriteString(sep)
			}
			sb.WriteString(renderCell(cells[row][lane], laneW, row == catchRow))
		}
		sb.WriteRune('\n')
	}

	col := catcherColumn(catcherX, laneW)
	sb.WriteString(strings.Repeat(" ", col))
	sb.WriteString(catcherStyle.Render(catcherToken))
	boardW := core.LaneCount*laneW + core.LaneCount - 1
	if pad := boardW - col - lipgloss.Width(catcherToken); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}

	return boardStyle.Render(sb.String())
}

func renderCell(it *catchzone.ItemView, laneW int, catchLine bool) string {
	if it == nil {
		if catchLine {
			return catchLineStyle.Render(strings.Repeat("·", laneW))
		}
		return strings.Repeat(" ", laneW)
	}
	token := it.Token
	if token == "" {
		token = it.Kind
	}
	cell := lipgloss.PlaceHorizontal(laneW, lipgloss.Center, token)
	if it.Hazard {
		return hazardStyle.Render(cell)
	}
	return cell
}

// renderHUD draws the title line with score, level and misses.
func renderHUD(s catchzone.Snapshot, maxMisses int) string {
	misses := fmt.Sprintf("MISSES %d/%d", s.Misses, maxMisses)
	if s.Misses > 0 {
		misses = missStyle.Render(misses)
	} else {
		misses = hudStyle.Render(misses)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("CATCH ZONE"),
		"   ",
		hudStyle.Render(fmt.Sprintf("SCORE %d", s.Score)),
		"   ",
		hudStyle.Render(fmt.Sprintf("LEVEL %d", s.Level)),
		"   ",
		misses,
	)
}

// renderGameOver describes how the session ended.
func renderGameOver(r catchzone.Result) string {
	var why string
	switch r.Reason {
	case catchzone.EndHazardCaught:
		why = "caught the bomb"
	case catchzone.EndFruitMissed:
		why = "too many misses"
	default:
		why = "stopped"
	}
	return overStyle.Render(fmt.Sprintf("GAME OVER (%s)  score %d, level %d", why, r.Score, r.Level)) +
		"\n" + feedStyle.Render("press r to play again")
}
