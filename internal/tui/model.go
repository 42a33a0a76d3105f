// Package tui hosts the admin screens in a Bubble Tea program. Each tab
// owns one list; the widgets here act as its picker, toggle and drag
// surface and turn key and mouse events into list operations.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/listadmin/internal/catalog"
	"github.com/idilsaglam/listadmin/internal/model"
	"github.com/idilsaglam/listadmin/internal/orderlist"
	"github.com/idilsaglam/listadmin/internal/store"
)

// Options configure a Model.
type Options struct {
	Screens []catalog.Screen
	Start   string // key of the tab to open first
	NewIDs  func() orderlist.IDGenerator
	Sink    store.Sink
	Logger  *slog.Logger
}

// savedMsg reports the outcome of a save command.
type savedMsg struct {
	screen string
	rev    int
	items  int
	err    error
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	tabs   []*screenState
	active int

	keys keyMap
	help help.Model
	sink store.Sink
	log  *slog.Logger

	width, height int

	status    string
	statusErr bool
}

// New mounts every screen. Each gets its own identity generator.
func New(ctx context.Context, opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.NewIDs == nil {
		opt.NewIDs = func() orderlist.IDGenerator { return &orderlist.Counter{} }
	}
	if len(opt.Screens) == 0 {
		opt.Screens = catalog.All()
	}
	m := Model{
		ctx:    ctx,
		keys:   defaultKeys(),
		help:   help.New(),
		sink:   opt.Sink,
		log:    opt.Logger,
		width:  80,
		height: 24,
	}
	for i, def := range opt.Screens {
		m.tabs = append(m.tabs, mountScreen(def, opt.NewIDs(), opt.Logger))
		if def.Key == opt.Start {
			m.active = i
		}
	}
	return m
}

func (m Model) screen() *screenState { return m.tabs[m.active] }

// Snapshot returns the current contents of the tab with the given key.
func (m Model) Snapshot(key string) (orderlist.Snapshot, bool) {
	for _, s := range m.tabs {
		if s.def.Key == key {
			return s.list.Snapshot(), true
		}
	}
	return orderlist.Snapshot{}, false
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.screen()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width - 4
		if s.picking {
			s.picker.SetSize(m.width-4, m.bodyHeight())
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.log.Error("save failed", "screen", msg.screen, "err", msg.err)
			m.setError("save " + msg.screen + ": " + msg.err.Error())
			return m, nil
		}
		for _, t := range m.tabs {
			if t.def.Key == msg.screen {
				t.savedRev = msg.rev
			}
		}
		m.setStatus(fmt.Sprintf("saved %s (%d items)", msg.screen, msg.items))
		return m, nil

	case tea.MouseMsg:
		if s.picking {
			var cmd tea.Cmd
			s.picker, _, cmd = s.picker.Update(msg)
			return m, cmd
		}
		return m.updateMouse(msg)
	}

	km, isKey := msg.(tea.KeyMsg)
	if isKey && km.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if s.picking {
		return m.updatePicker(msg)
	}
	if !isKey {
		return m, nil
	}
	if s.gesture.Active() {
		return m.updateDrag(km)
	}
	return m.updateNormal(km)
}

func (m Model) updateNormal(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.screen()
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Cancel):
		m.clearStatus()
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(km, m.keys.NextTab):
		m.active = (m.active + 1) % len(m.tabs)
		m.clearStatus()
	case key.Matches(km, m.keys.PrevTab):
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
		m.clearStatus()
	case key.Matches(km, m.keys.Up):
		s.moveRow(-1)
	case key.Matches(km, m.keys.Down):
		s.moveRow(1)
	case key.Matches(km, m.keys.Left):
		s.moveCol(-1)
	case key.Matches(km, m.keys.Right):
		s.moveCol(1)
	case key.Matches(km, m.keys.Toggle):
		m.absorb("toggle", s.toggle())
	case key.Matches(km, m.keys.Add):
		m.openPicker()
	case key.Matches(km, m.keys.Delete):
		it, err := s.remove()
		if m.absorb("remove", err) {
			m.setStatus("removed " + it.Name + " (u to undo)")
		}
	case key.Matches(km, m.keys.Undo):
		it, err := s.undo()
		if m.absorb("undo", err) {
			m.setStatus("restored " + it.Name)
		}
	case key.Matches(km, m.keys.Grab):
		if s.grab() {
			m.setStatus("moving " + m.sourceName() + ": ↑/↓ then enter, esc to cancel")
		}
	case key.Matches(km, m.keys.Save):
		return m, m.save(s)
	}
	s.scrollTo(s.row, m.rowsHeight())
	return m, nil
}

func (m Model) updateDrag(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.screen()
	switch {
	case key.Matches(km, m.keys.Up):
		s.gesture.Step(s.list, -1)
	case key.Matches(km, m.keys.Down):
		s.gesture.Step(s.list, 1)
	case key.Matches(km, m.keys.Drop):
		m.finishDrop(s.gesture.Hovered())
	case key.Matches(km, m.keys.Cancel), key.Matches(km, m.keys.Quit):
		s.cancelDrag()
		m.setStatus("move cancelled")
	}
	if r := s.hoverRow(); r >= 0 {
		s.scrollTo(r, m.rowsHeight())
	} else {
		s.scrollTo(s.row, m.rowsHeight())
	}
	return m, nil
}

func (m *Model) finishDrop(target model.ID) {
	s := m.screen()
	name := m.sourceName()
	mv, ok := s.drop(target)
	if !ok {
		m.setStatus("move cancelled")
		return
	}
	m.log.Debug("reorder", "screen", s.def.Key, "id", mv.ID, "from", mv.From, "to", mv.To)
	m.setStatus(fmt.Sprintf("moved %s to position %d", name, mv.To+1))
}

func (m Model) sourceName() string {
	s := m.screen()
	if it, ok := s.list.Lookup(s.gesture.Source()); ok {
		return it.Name
	}
	return ""
}

func (m *Model) openPicker() {
	s := m.screen()
	if s.def.HasPool() {
		avail := s.list.AvailableCandidates()
		if len(avail) == 0 {
			m.setStatus("every " + s.def.Noun + " is already listed")
			return
		}
		s.picker = newPoolPicker("Add "+s.def.Noun, avail, m.width-4, m.bodyHeight())
	} else {
		s.picker = newFreePicker(s.def.Noun)
	}
	s.picking = true
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.screen()
	var (
		out pickOutcome
		cmd tea.Cmd
	)
	s.picker, out, cmd = s.picker.Update(msg)
	switch out {
	case pickChosen:
		name := s.picker.Staged()
		it, err := s.add(name)
		if m.absorb("add", err) {
			m.log.Debug("add", "screen", s.def.Key, "id", it.ID, "name", it.Name)
			m.setStatus("added " + it.Name)
			s.picking = false
			s.scrollTo(s.row, m.rowsHeight())
		}
		return m, nil
	case pickClosed:
		s.picking = false
		return m, nil
	}
	return m, cmd
}

func (m Model) save(s *screenState) tea.Cmd {
	if m.sink == nil {
		return nil
	}
	ctx, sink, key, rev := m.ctx, m.sink, s.def.Key, s.rev
	snap := s.list.Snapshot()
	return func() tea.Msg {
		err := sink.Save(ctx, key, snap)
		return savedMsg{screen: key, rev: rev, items: len(snap.Items), err: err}
	}
}

// absorb logs a rejected operation and reports whether err was nil.
// Rejected operations leave the list untouched, so this is never fatal.
func (m *Model) absorb(op string, err error) bool {
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, orderlist.ErrInvalidInput),
		errors.Is(err, orderlist.ErrNotFound),
		errors.Is(err, orderlist.ErrOutOfRange):
		m.log.Debug("ignored", "op", op, "screen", m.screen().def.Key, "err", err)
	default:
		m.log.Warn("ignored", "op", op, "screen", m.screen().def.Key, "err", err)
	}
	m.setError(op + ": " + err.Error())
	return false
}

func (m *Model) setStatus(s string) { m.status, m.statusErr = s, false }
func (m *Model) setError(s string)  { m.status, m.statusErr = s, true }
func (m *Model) clearStatus()       { m.status, m.statusErr = "", false }
