// Package ui renders tracker state for the terminal: the streak flame, the
// calorie progress bar, and the friends leaderboard.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Berucha/FitStreak/internal/model"
)

// Milestone colors for the streak flame.
var (
	flameRed    = lipgloss.Color("196")
	flameOrange = lipgloss.Color("208")
	flameBlue   = lipgloss.Color("33")
	flamePurple = lipgloss.Color("129")

	barYellow = lipgloss.Color("220")
	barGreen  = lipgloss.Color("42")
	barRed    = lipgloss.Color("196")

	dimStyle  = lipgloss.NewStyle().Faint(true)
	rankStyle = lipgloss.NewStyle().Bold(true)
)

// Renderer styles tracker output. With color disabled everything renders as
// plain text.
type Renderer struct {
	noColor bool
}

func NewRenderer(noColor bool) *Renderer {
	return &Renderer{noColor: noColor}
}

// Flame renders the streak count with a flame whose color grows with the
// milestone reached: under 7 days red, 7+ orange, 30+ blue, 100+ purple.
func (r *Renderer) Flame(streak int) string {
	label := fmt.Sprintf("🔥 %d day streak", streak)
	if r.noColor {
		return label
	}
	return lipgloss.NewStyle().Bold(true).Foreground(flameColor(streak)).Render(label)
}

func flameColor(streak int) lipgloss.Color {
	switch {
	case streak >= 100:
		return flamePurple
	case streak >= 30:
		return flameBlue
	case streak >= 7:
		return flameOrange
	default:
		return flameRed
	}
}

// ProgressBar renders consumed-vs-goal progress. The fill is clamped to the
// bar width; the color still reflects the real ratio, turning red past 110%
// and green in the 90-110% band around the goal.
func (r *Renderer) ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	clamped := percent
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}
	filled := int(clamped / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := fmt.Sprintf("%s %.0f%%", bar, percent)
	if r.noColor {
		return label
	}
	return lipgloss.NewStyle().Foreground(progressColor(percent)).Render(label)
}

func progressColor(percent float64) lipgloss.Color {
	switch {
	case percent > 110:
		return barRed
	case percent > 90:
		return barGreen
	default:
		return barYellow
	}
}

// Leaderboard renders the friends feed as ranked rows, streaks descending.
func (r *Renderer) Leaderboard(friends []model.Friend) string {
	if len(friends) == 0 {
		return "No friends yet."
	}
	var b strings.Builder
	for i, f := range friends {
		rank := fmt.Sprintf("%2d.", i+1)
		streak := fmt.Sprintf("%3d 🔥", f.CurrentStreak)
		last := fmt.Sprintf("last workout %s", f.LastWorkout)
		if !r.noColor {
			rank = rankStyle.Render(rank)
			last = dimStyle.Render(last)
		}
		fmt.Fprintf(&b, "%s %s %-16s %s\n", rank, f.Avatar, f.Name, streak)
		fmt.Fprintf(&b, "       %s\n", last)
	}
	return strings.TrimRight(b.String(), "\n")
}
