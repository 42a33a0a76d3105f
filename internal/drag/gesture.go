// Package drag turns a continuous drag interaction into at most one
// discrete reorder. The surface reports start, hover, drop and cancel
// events; only a drop onto a different, known row touches the list.
package drag

import "github.com/idilsaglam/listadmin/internal/model"

// State is where a gesture is in its life cycle.
type State int

const (
	Idle State = iota
	Dragging
	Dropped
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Dropped:
		return "dropped"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Target is the list a gesture operates on. *orderlist.List satisfies it.
type Target interface {
	IndexOf(id model.ID) (int, bool)
	Item(i int) (model.Item, bool)
	Len() int
	Reorder(src, dst int) error
}

// Gesture tracks one drag at a time. The zero value is Idle.
type Gesture struct {
	state  State
	source model.ID
	over   model.ID
}

// Move is the reorder a drop resolved to.
type Move struct {
	ID       model.ID
	From, To int
}

// State returns the current state.
func (g *Gesture) State() State { return g.state }

// Active reports whether a drag is in progress.
func (g *Gesture) Active() bool { return g.state == Dragging }

// Source is the identity being dragged, empty when not dragging.
func (g *Gesture) Source() model.ID {
	if g.state != Dragging {
		return ""
	}
	return g.source
}

// Hovered is the last reported target, empty when not dragging.
func (g *Gesture) Hovered() model.ID {
	if g.state != Dragging {
		return ""
	}
	return g.over
}

// Start begins dragging id. A second Start while dragging is ignored:
// there is only one pointer.
func (g *Gesture) Start(id model.ID) bool {
	if g.state == Dragging || id == "" {
		return false
	}
	g.state = Dragging
	g.source = id
	g.over = id
	return true
}

// Over records the hovered row. The list is not touched.
func (g *Gesture) Over(id model.ID) {
	if g.state != Dragging {
		return
	}
	g.over = id
}

// Step moves the hover by delta rows, clamped to the list. It is the
// keyboard counterpart of pointer motion.
func (g *Gesture) Step(t Target, delta int) {
	if g.state != Dragging || t.Len() == 0 {
		return
	}
	i, ok := t.IndexOf(g.over)
	if !ok {
		if i, ok = t.IndexOf(g.source); !ok {
			return
		}
	}
	i = max(0, min(i+delta, t.Len()-1))
	if it, ok := t.Item(i); ok {
		g.over = it.ID
	}
}

// Drop ends the drag over target. Both identities are resolved to
// their indices now, not at Start, and Reorder is called exactly once.
// Dropping on the source itself, on nothing, or on a row the list does
// not know cancels instead.
func (g *Gesture) Drop(t Target, target model.ID) (Move, bool) {
	if g.state != Dragging {
		return Move{}, false
	}
	if target == "" || target == g.source {
		g.Cancel()
		return Move{}, false
	}
	from, okFrom := t.IndexOf(g.source)
	to, okTo := t.IndexOf(target)
	if !okFrom || !okTo {
		g.Cancel()
		return Move{}, false
	}
	if err := t.Reorder(from, to); err != nil {
		g.Cancel()
		return Move{}, false
	}
	g.state = Dropped
	g.over = target
	return Move{ID: g.source, From: from, To: to}, true
}

// DropHovered drops on the last hovered row.
func (g *Gesture) DropHovered(t Target) (Move, bool) {
	return g.Drop(t, g.over)
}

// Cancel abandons the drag without touching the list.
func (g *Gesture) Cancel() {
	if g.state != Dragging {
		return
	}
	g.state = Cancelled
}

// Reset returns the gesture to Idle.
func (g *Gesture) Reset() { *g = Gesture{} }
