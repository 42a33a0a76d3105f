package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the program and blocks until the user quits. The final
// model is returned so the caller can report unsaved tabs.
func Run(ctx context.Context, opt Options) (Model, error) {
	m := New(ctx, opt)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("run program: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return m, nil
	}
	return fm, nil
}

// Unsaved lists the titles of tabs changed since their last save.
func (m Model) Unsaved() []string {
	var out []string
	for _, s := range m.tabs {
		if s.dirty() {
			out = append(out, s.def.Title)
		}
	}
	return out
}
