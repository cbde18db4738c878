package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// Styles are bound to the renderer of the output they are printed on.
type Theme struct {
	Name string

	Title, Header, Accent, Muted lipgloss.Style
	Success, Error, Warn         lipgloss.Style
	Student, Librarian, Stats    lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, SymWarn string
}

// Themes lists the names accepted by NewTheme.
var Themes = []string{"classic", "neon", "mono"}

// NewTheme builds the named theme; unknown names fall back to classic.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := r.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       s().Bold(true).Foreground(lipgloss.Color("13")),
			Header:      s().Bold(true).Foreground(lipgloss.Color("14")),
			Accent:      s().Foreground(lipgloss.Color("14")),
			Muted:       s().Faint(true),
			Success:     s().Foreground(lipgloss.Color("10")),
			Error:       s().Foreground(lipgloss.Color("9")).Bold(true),
			Warn:        s().Foreground(lipgloss.Color("11")),
			Student:     s().Foreground(lipgloss.Color("12")),
			Librarian:   s().Foreground(lipgloss.Color("11")),
			Stats:       s().Foreground(lipgloss.Color("13")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymOK:       "✔", SymFail: "✖", SymWarn: "!",
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: s(), Header: s(), Accent: s(), Muted: s(),
			Success: s(), Error: s(), Warn: s(),
			Student: s(), Librarian: s(), Stats: s(),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			SymOK:       "✓", SymFail: "✗", SymWarn: "!",
		}
	default: // classic
		return Theme{
			Name:        "classic",
			Title:       s().Bold(true),
			Header:      s().Bold(true),
			Accent:      s().Foreground(lipgloss.Color("6")),
			Muted:       s().Faint(true),
			Success:     s().Foreground(lipgloss.Color("2")),
			Error:       s().Foreground(lipgloss.Color("1")),
			Warn:        s().Foreground(lipgloss.Color("3")),
			Student:     s().Foreground(lipgloss.Color("4")),
			Librarian:   s().Foreground(lipgloss.Color("3")),
			Stats:       s().Foreground(lipgloss.Color("5")),
			Border:      lipgloss.DoubleBorder(),
			BorderColor: lipgloss.Color("6"),
			SymOK:       "✓", SymFail: "✗", SymWarn: "!",
		}
	}
}
