package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/idilsaglam/listadmin/internal/catalog"
	"github.com/idilsaglam/listadmin/internal/drag"
	"github.com/idilsaglam/listadmin/internal/model"
	"github.com/idilsaglam/listadmin/internal/orderlist"
)

// screenState is one mounted tab. It owns its list for as long as the
// program runs; nothing else holds a reference to it.
type screenState struct {
	def  catalog.Screen
	list *orderlist.List

	row, col int
	offset   int // first visible row
	gesture  drag.Gesture

	picking bool
	picker  picker

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  model.Item

	rev, savedRev int // mutation counter and the value last saved
}

func mountScreen(def catalog.Screen, ids orderlist.IDGenerator, log *slog.Logger) *screenState {
	l, err := def.Mount(ids)
	if err != nil {
		log.Warn("mount screen", "screen", def.Key, "err", err)
	}
	return &screenState{def: def, list: l}
}

func (s *screenState) touch()      { s.rev++ }
func (s *screenState) dirty() bool { return s.rev != s.savedRev }

func (s *screenState) currentItem() (model.Item, bool) { return s.list.Item(s.row) }

func (s *screenState) currentAttr() (model.Attr, bool) {
	sc := s.list.Schema()
	if s.col < 0 || s.col >= len(sc) {
		return 0, false
	}
	return sc[s.col], true
}

func (s *screenState) clampCursor() {
	s.row = max(0, min(s.row, s.list.Len()-1))
	s.col = max(0, min(s.col, len(s.list.Schema())-1))
}

func (s *screenState) moveRow(delta int) {
	s.row += delta
	s.clampCursor()
}

func (s *screenState) moveCol(delta int) {
	s.col += delta
	s.clampCursor()
}

// scrollTo keeps row visible in a window of height rows.
func (s *screenState) scrollTo(row, height int) {
	if height <= 0 {
		return
	}
	if row < s.offset {
		s.offset = row
	}
	if row >= s.offset+height {
		s.offset = row - height + 1
	}
	s.offset = max(0, min(s.offset, max(s.list.Len()-height, 0)))
}

func (s *screenState) toggle() error {
	it, ok := s.currentItem()
	if !ok {
		return fmt.Errorf("toggle: empty list: %w", orderlist.ErrNotFound)
	}
	a, ok := s.currentAttr()
	if !ok {
		return fmt.Errorf("toggle: %s has no columns: %w", s.def.Key, orderlist.ErrInvalidInput)
	}
	if err := s.list.ToggleAttribute(it.ID, a); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *screenState) add(name string) (model.Item, error) {
	it, err := s.list.AddItem(name)
	if err != nil {
		return it, err
	}
	s.row = s.list.Len() - 1
	s.touch()
	return it, nil
}

func (s *screenState) remove() (model.Item, error) {
	it, ok := s.currentItem()
	if !ok {
		return it, fmt.Errorf("remove: empty list: %w", orderlist.ErrNotFound)
	}
	idx := s.row
	removed, err := s.list.RemoveItem(it.ID)
	if err != nil {
		return removed, err
	}
	s.undoItem, s.undoIndex, s.canUndo = removed, idx, true
	s.touch()
	s.clampCursor()
	return removed, nil
}

func (s *screenState) undo() (model.Item, error) {
	if !s.canUndo {
		return model.Item{}, errors.New("nothing to undo")
	}
	if err := s.list.Insert(s.undoIndex, s.undoItem); err != nil {
		// The name was re-added in the meantime; the removed row is gone.
		s.canUndo = false
		return model.Item{}, err
	}
	it := s.undoItem
	s.row, _ = s.list.IndexOf(it.ID)
	s.canUndo = false
	s.touch()
	return it, nil
}

// grab starts a drag on the cursor row.
func (s *screenState) grab() bool {
	it, ok := s.currentItem()
	if !ok {
		return false
	}
	return s.gesture.Start(it.ID)
}

// drop finishes the drag on target and follows the moved row.
func (s *screenState) drop(target model.ID) (drag.Move, bool) {
	mv, ok := s.gesture.Drop(s.list, target)
	if ok {
		s.row = mv.To
		s.touch()
	}
	s.gesture.Reset()
	return mv, ok
}

func (s *screenState) cancelDrag() {
	s.gesture.Cancel()
	s.gesture.Reset()
}

// hoverRow is the list index of the drag's current target, or -1.
func (s *screenState) hoverRow() int {
	if !s.gesture.Active() {
		return -1
	}
	i, ok := s.list.IndexOf(s.gesture.Hovered())
	if !ok {
		return -1
	}
	return i
}
