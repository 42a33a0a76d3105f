package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/listadmin/internal/ui"
)

// candidateItem adapts a pool name to bubbles/list.Item
type candidateItem string

func (c candidateItem) FilterValue() string { return string(c) }

// Custom delegate to control how candidates render (single line)
type candidateDelegate struct{}

func (d candidateDelegate) Height() int                               { return 1 }
func (d candidateDelegate) Spacing() int                              { return 0 }
func (d candidateDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d candidateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	c, _ := item.(candidateItem)
	t := ui.Current()
	name := ansi.Truncate(string(c), max(m.Width()-4, 8), "…")
	if index == m.Index() {
		fmt.Fprintln(w, t.Selected.Render(t.Cursor)+t.Accent.Render(name))
		return
	}
	fmt.Fprintln(w, "  "+name)
}

type pickOutcome int

const (
	pickPending pickOutcome = iota
	pickChosen
	pickClosed
)

// picker stages one name to add. Screens with a pool pick from the
// names still available; the others take free text.
type picker struct {
	free bool
	noun string
	list list.Model
	ti   textinput.Model
	err  string
}

func newPoolPicker(title string, candidates []string, width, height int) picker {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = candidateItem(c)
	}
	l := list.New(items, candidateDelegate{}, width, height)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("candidate", "candidates")
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	return picker{list: l}
}

func newFreePicker(noun string) picker {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New " + noun + " name..."
	ti.CharLimit = 120
	ti.Focus()
	return picker{free: true, noun: noun, ti: ti}
}

// Staged is the name that enter would add right now.
func (p picker) Staged() string {
	if p.free {
		return strings.TrimSpace(p.ti.Value())
	}
	if c, ok := p.list.SelectedItem().(candidateItem); ok {
		return string(c)
	}
	return ""
}

func (p picker) Update(msg tea.Msg) (picker, pickOutcome, tea.Cmd) {
	if p.free {
		return p.updateFree(msg)
	}
	if km, ok := msg.(tea.KeyMsg); ok && p.list.FilterState() != list.Filtering {
		switch km.String() {
		case "enter":
			if p.Staged() == "" {
				return p, pickPending, nil
			}
			return p, pickChosen, nil
		case "esc", "q":
			if p.list.FilterState() == list.FilterApplied {
				p.list.ResetFilter()
				return p, pickPending, nil
			}
			return p, pickClosed, nil
		}
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, pickPending, cmd
}

func (p picker) updateFree(msg tea.Msg) (picker, pickOutcome, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			if p.Staged() == "" {
				p.err = "Name cannot be empty"
				return p, pickPending, nil
			}
			return p, pickChosen, nil
		case "esc":
			return p, pickClosed, nil
		}
	}
	var cmd tea.Cmd
	p.ti, cmd = p.ti.Update(msg)
	p.err = ""
	return p, pickPending, cmd
}

func (p *picker) SetSize(width, height int) {
	if !p.free {
		p.list.SetSize(width, height)
	}
}

func (p picker) View() string {
	if !p.free {
		return p.list.View()
	}
	t := ui.Current()
	title := "Add " + p.noun
	if p.err != "" {
		title += " - " + t.Error.Render(p.err)
	}
	return title + "\n" + p.ti.View()
}
