package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Dragging, DropTarget               lipgloss.Style

	BoxUnchecked, BoxChecked string
	Grip, Cursor             string
	SymOK, SymFail           string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
}

var (
	current = classic()

	// profile is what the renderer used before mono took over; nil while
	// mono is not active.
	profile *termenv.Profile
)

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Dragging:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		DropTarget:   lipgloss.NewStyle().Underline(true),
		BoxUnchecked: "☐", BoxChecked: "☑",
		Grip: "⋮⋮", Cursor: "> ",
		SymOK: "✔", SymFail: "✖",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Dragging = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.BorderColor = lipgloss.Color("13")
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain.Bold(true), Muted: plain, Accent: plain,
		Success: plain, Error: plain, Pending: plain,
		Selected: plain.Reverse(true), Dragging: plain.Bold(true), DropTarget: plain.Underline(true),
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		Grip: "::", Cursor: "> ",
		SymOK: "ok", SymFail: "x",
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
	}
}

// SetTheme switches the palette. Unknown names fall back to classic.
// mono also drops the renderer to plain ASCII output.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		if profile == nil {
			p := lipgloss.ColorProfile()
			profile = &p
		}
		lipgloss.SetColorProfile(termenv.Ascii)
		current = mono()
		return
	case "neon":
		current = neon()
	default:
		current = classic()
	}
	if profile != nil {
		lipgloss.SetColorProfile(*profile)
		profile = nil
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
