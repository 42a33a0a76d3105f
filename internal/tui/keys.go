package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	NextTab, PrevTab      key.Binding
	Toggle, Add, Delete   key.Binding
	Undo, Grab, Save      key.Binding
	Drop, Cancel, Quit    key.Binding
	Help                  key.Binding

	PickAdd, PickFilter, PickClose key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev screen")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Undo:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Grab:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		Save:    key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Drop:    key.NewBinding(key.WithKeys("enter", "m"), key.WithHelp("enter", "drop")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),

		PickAdd:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		PickFilter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		PickClose:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// bindingSet is a fixed list of bindings shown by bubbles/help.
type bindingSet []key.Binding

func (b bindingSet) ShortHelp() []key.Binding  { return b }
func (b bindingSet) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) normalHelp(full bool) bindingSet {
	if !full {
		return bindingSet{k.Up, k.Toggle, k.Add, k.Delete, k.Grab, k.Save, k.Help, k.Quit}
	}
	return bindingSet{k.Up, k.Down, k.Left, k.Right, k.NextTab, k.PrevTab,
		k.Toggle, k.Add, k.Delete, k.Undo, k.Grab, k.Save, k.Help, k.Quit}
}

func (k keyMap) dragHelp() bindingSet {
	return bindingSet{k.Up, k.Down, k.Drop, k.Cancel}
}

func (k keyMap) pickerHelp(free bool) bindingSet {
	if free {
		return bindingSet{k.PickAdd, k.PickClose}
	}
	return bindingSet{k.Up, k.Down, k.PickFilter, k.PickAdd, k.PickClose}
}
