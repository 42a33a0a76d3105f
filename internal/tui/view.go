package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/listadmin/internal/model"
	"github.com/idilsaglam/listadmin/internal/ui"
)

// Layout inside the frame: tabs, blank, title, column groups, column
// header, rows, blank, status, help. The frame adds one border line on
// each side.
const (
	frameLines  = 2
	headerLines = 2 // tabs + blank
	footerLines = 3 // blank + status + help
	tableLines  = 3 // title + column groups + column header
	rowsTop     = 1 + headerLines + tableLines
)

func (m Model) bodyHeight() int {
	return max(m.height-frameLines-headerLines-footerLines, 3)
}

func (m Model) rowsHeight() int {
	return max(m.bodyHeight()-tableLines, 1)
}

// rowAt maps a terminal line to a list index.
func (m Model) rowAt(y int) (int, bool) {
	s := m.screen()
	r := y - rowsTop
	if r < 0 || r >= m.rowsHeight() {
		return -1, false
	}
	i := s.offset + r
	if i >= s.list.Len() {
		return -1, false
	}
	return i, true
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.screen()
	row, onRow := m.rowAt(msg.Y)
	var target model.ID
	if onRow {
		it, _ := s.list.Item(row)
		target = it.ID
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			s.moveRow(-1)
		case tea.MouseButtonWheelDown:
			s.moveRow(1)
		case tea.MouseButtonLeft:
			if onRow && !s.gesture.Active() {
				s.row = row
				s.grab()
			}
		}
	case tea.MouseActionMotion:
		if s.gesture.Active() {
			s.gesture.Over(target)
		}
	case tea.MouseActionRelease:
		if !s.gesture.Active() {
			break
		}
		if target == s.gesture.Source() {
			// A plain click: it selected the row, nothing moved.
			s.cancelDrag()
			break
		}
		m.finishDrop(target)
	}
	s.scrollTo(s.row, m.rowsHeight())
	return m, nil
}

func (m Model) View() string {
	s := m.screen()
	t := ui.Current()

	var b strings.Builder
	b.WriteString(m.tabsLine())
	b.WriteString("\n\n")

	if s.picking {
		b.WriteString(s.picker.View())
	} else {
		b.WriteString(strings.Join(m.table(s), "\n"))
	}

	b.WriteString("\n\n")
	switch {
	case m.status == "":
		b.WriteString(" ")
	case m.statusErr:
		b.WriteString(t.Error.Render(m.status))
	default:
		b.WriteString(t.Muted.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.helpKeys(s)))
	return ui.Frame(b.String())
}

func (m Model) helpKeys(s *screenState) bindingSet {
	switch {
	case s.picking:
		return m.keys.pickerHelp(s.picker.free)
	case s.gesture.Active():
		return m.keys.dragHelp()
	}
	return m.keys.normalHelp(m.help.ShowAll)
}

func (m Model) tabsLine() string {
	t := ui.Current()
	parts := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		label := " " + tab.def.Title + " "
		if tab.dirty() {
			label = " " + tab.def.Title + "* "
		}
		if i == m.active {
			parts[i] = t.Selected.Render(label)
		} else {
			parts[i] = t.Muted.Render(label)
		}
	}
	return ansi.Truncate(strings.Join(parts, " "), max(m.width-4, 10), "…")
}

func (m Model) summary(s *screenState) string {
	t := ui.Current()
	line := fmt.Sprintf("%s   %s %d", t.Title.Render(s.def.Title), t.Accent.Render("Total"), s.list.Len())
	if s.def.HasPool() {
		line += fmt.Sprintf("  %s %d/%d", t.Pending.Render("available"),
			len(s.list.AvailableCandidates()), s.list.PoolSize())
	}
	snap := s.list.Snapshot()
	for _, a := range snap.Schema {
		line += fmt.Sprintf("  %s %d", t.Success.Render(a.Label()), len(snap.Enabled(a)))
	}
	// One line only: the mouse maps rows by fixed offsets.
	return ansi.Truncate(line, max(m.width-4, 10), "…")
}

func pad(s string, w int) string {
	if gap := w - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func center(s string, w int) string {
	gap := w - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func (m Model) table(s *screenState) []string {
	t := ui.Current()
	schema := s.list.Schema()
	items := s.list.Items()

	colW := make([]int, len(schema))
	fixed := 2 + 4 + 3 // cursor, position, grip
	for i, a := range schema {
		colW[i] = max(ansi.StringWidth(a.Label()), 3) + 2
		fixed += colW[i]
	}
	nameW := 12
	for _, it := range items {
		nameW = max(nameW, ansi.StringWidth(it.Name))
	}
	nameW = max(min(nameW, 32, m.width-4-fixed), 6)

	lead := 2 + 4 + 3 + nameW
	groups := strings.Repeat(" ", lead)
	for _, g := range s.def.Groups {
		w := 0
		for _, a := range g.Attrs {
			if i := schema.Index(a); i >= 0 {
				w += colW[i]
			}
		}
		groups += center(g.Label, w)
	}
	if len(s.def.Groups) == 0 {
		groups = ""
	}

	header := pad("", 2) + pad("#", 4) + pad("", 3) + pad("Name", nameW)
	for i, a := range schema {
		label := a.Label()
		if i == s.col {
			label = t.Accent.Render(label)
		}
		header += center(label, colW[i])
	}

	lines := []string{m.summary(s), t.Title.Render(groups), t.Muted.Render(header)}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("  no entries - press a to add a "+s.def.Noun))
		return lines
	}

	src := s.gesture.Source()
	hover := s.hoverRow()
	end := min(s.offset+m.rowsHeight(), len(items))
	for i := s.offset; i < end; i++ {
		it := items[i]
		cursor := "  "
		if i == s.row && !s.gesture.Active() {
			cursor = t.Selected.Render(t.Cursor)
		}
		if i == hover && it.ID != src {
			cursor = t.Dragging.Render("» ")
		}

		name := pad(ansi.Truncate(it.Name, nameW, "…"), nameW)
		grip := t.Muted.Render(t.Grip)
		switch {
		case it.ID == src:
			name = t.Dragging.Render(name)
			grip = t.Dragging.Render(t.Grip)
		case i == hover:
			name = t.DropTarget.Render(name)
		}

		line := cursor + pad(fmt.Sprintf("%d", i+1), 4) + grip + " " + name
		for c, a := range schema {
			line += center(m.cell(s, it, a, i == s.row && c == s.col), colW[c])
		}
		lines = append(lines, line)
	}
	return lines
}

// cell renders one attribute. On restricting screens a switched-on cell
// reads as blocked.
func (m Model) cell(s *screenState, it model.Item, a model.Attr, cursor bool) string {
	t := ui.Current()
	on := it.Has(a)
	mark, style := t.BoxUnchecked, t.Muted
	switch {
	case s.def.Restricts && on:
		mark, style = t.SymFail, t.Error
	case s.def.Restricts:
		mark, style = t.SymOK, t.Success
	case on:
		mark, style = t.BoxChecked, t.Success
	}
	if cursor && !s.gesture.Active() {
		style = t.Selected
	}
	return style.Render(mark)
}
