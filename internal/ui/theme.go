package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Cosmos506/Gamification-life/internal/engine"
)

// Vie Gamifiée theme (CLI + TUI).

const (
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLock    = "🔒"
	IconChart   = "📈"
	IconScroll  = "📜"
	IconGear    = "⚙️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Selected   = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar renders fraction (clamped to [0,1]) as a bar of width cells.
func ProgressBar(fraction float64, width int) string {
	if width < 3 {
		width = 3
	}
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// ChartLines renders one horizontal bar per point, scaled to the largest XP.
func ChartLines(points []engine.ChartPoint, width int) []string {
	if width < 1 {
		width = 1
	}
	peak := 0
	for _, p := range points {
		if p.XP > peak {
			peak = p.XP
		}
	}
	out := make([]string, 0, len(points))
	for _, p := range points {
		n := 0
		if peak > 0 {
			n = p.XP * width / peak
		}
		if p.XP > 0 && n == 0 {
			n = 1
		}
		out = append(out, fmt.Sprintf("%s %s %d", Muted.Render(p.Date), Gold.Render(strings.Repeat("█", n)), p.XP))
	}
	return out
}

func SourceText(s engine.BadgeSource) string {
	switch s {
	case engine.BadgeSourceSpecial:
		return H2.Render("spécial")
	case engine.BadgeSourceAction:
		return Muted.Render("action")
	default:
		return Title.Render("perso")
	}
}

// BadgeLine is the one-line rendering of a badge result.
func BadgeLine(b engine.BadgeResult) string {
	icon, name := IconLock, Muted.Render(b.Name)
	if b.Unlocked {
		icon, name = IconTrophy, Good.Render(b.Name)
	}
	return fmt.Sprintf("%s %s %s %s", icon, name, Muted.Render("·"), b.Description)
}
