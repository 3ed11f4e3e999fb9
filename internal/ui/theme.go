package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ENEM Focus theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconFire     = "🔥"
	IconBook     = "📚"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconPartial  = "🌗"
	IconMissed   = "❌"
	IconRecovery = "🔄"
	IconTrophy   = "🏆"
	IconStar     = "⭐"
	IconCalendar = "📅"
	IconTarget   = "🎯"
	IconClock    = "⏱️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconLock     = "🔒"
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

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
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

// StatusText renders a day status with its color.
func StatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "done":
		return Good.Render("completo")
	case "partial":
		return Warn.Render("parcial")
	case "missed":
		return Bad.Render("perdido")
	case "recovery":
		return H2.Render("recuperação")
	default:
		return Muted.Render("—")
	}
}

// StatusGlyph is the one-cell calendar marker for a day status.
func StatusGlyph(status string) string {
	switch status {
	case "done":
		return Good.Render("●")
	case "partial":
		return Warn.Render("◐")
	case "missed":
		return Bad.Render("○")
	case "recovery":
		return H2.Render("◍")
	default:
		return Muted.Render("·")
	}
}
