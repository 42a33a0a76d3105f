package drag

import (
	"slices"
	"testing"

	"github.com/idilsaglam/listadmin/internal/model"
	"github.com/idilsaglam/listadmin/internal/orderlist"
)

type countingTarget struct {
	*orderlist.List
	calls int
}

func (c *countingTarget) Reorder(src, dst int) error {
	c.calls++
	return c.List.Reorder(src, dst)
}

func newTarget(t *testing.T, names ...string) *countingTarget {
	t.Helper()
	l := orderlist.New(nil, nil, &orderlist.Counter{})
	for _, n := range names {
		if _, err := l.AddItem(n); err != nil {
			t.Fatalf("AddItem(%q): %v", n, err)
		}
	}
	return &countingTarget{List: l}
}

func order(l *orderlist.List) []string {
	var out []string
	for _, it := range l.Items() {
		out = append(out, it.Name)
	}
	return out
}

func TestDropReordersOnce(t *testing.T) {
	tg := newTarget(t, "A", "B", "C", "D")
	var g Gesture

	if !g.Start("1") {
		t.Fatalf("Start refused")
	}
	g.Over("2")
	g.Over("3")
	if tg.calls != 0 {
		t.Fatalf("hover mutated the list")
	}
	mv, ok := g.Drop(tg, "3")
	if !ok {
		t.Fatalf("Drop failed, state %s", g.State())
	}
	if mv != (Move{ID: "1", From: 0, To: 2}) {
		t.Fatalf("move = %+v", mv)
	}
	if tg.calls != 1 || g.State() != Dropped {
		t.Fatalf("calls = %d, state = %s", tg.calls, g.State())
	}
	if got := order(tg.List); !slices.Equal(got, []string{"B", "C", "A", "D"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestDropResolvesIndicesAtDropTime(t *testing.T) {
	tg := newTarget(t, "A", "B", "C")
	var g Gesture
	g.Start("3")
	// The list changes under the gesture before the drop lands.
	if err := tg.List.Reorder(2, 0); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	mv, ok := g.Drop(tg, "2")
	if !ok {
		t.Fatalf("Drop failed")
	}
	if mv.From != 0 || mv.To != 2 {
		t.Fatalf("move = %+v, want from 0 to 2", mv)
	}
	if got := order(tg.List); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestCancelPaths(t *testing.T) {
	tests := []struct {
		name string
		end  func(g *Gesture, tg *countingTarget)
	}{
		{name: "escape", end: func(g *Gesture, _ *countingTarget) { g.Cancel() }},
		{name: "drop on self", end: func(g *Gesture, tg *countingTarget) { g.Drop(tg, "2") }},
		{name: "drop outside", end: func(g *Gesture, tg *countingTarget) { g.Drop(tg, "") }},
		{name: "drop on unknown row", end: func(g *Gesture, tg *countingTarget) { g.Drop(tg, "99") }},
		{name: "hover back to source", end: func(g *Gesture, tg *countingTarget) {
			g.Over("3")
			g.Over("2")
			g.DropHovered(tg)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := newTarget(t, "A", "B", "C")
			var g Gesture
			g.Start("2")
			tt.end(&g, tg)
			if g.State() != Cancelled {
				t.Fatalf("state = %s, want cancelled", g.State())
			}
			if tg.calls != 0 {
				t.Fatalf("Reorder called %d times", tg.calls)
			}
			if got := order(tg.List); !slices.Equal(got, []string{"A", "B", "C"}) {
				t.Fatalf("order = %v", got)
			}
		})
	}
}

func TestStartWhileDraggingIsIgnored(t *testing.T) {
	var g Gesture
	g.Start("1")
	if g.Start("2") {
		t.Fatalf("second Start accepted")
	}
	if g.Source() != "1" {
		t.Fatalf("source = %s", g.Source())
	}
	g.Cancel()
	if !g.Start("2") || g.Source() != "2" {
		t.Fatalf("restart after cancel failed")
	}
}

func TestEventsOutsideDragAreIgnored(t *testing.T) {
	tg := newTarget(t, "A", "B")
	var g Gesture
	g.Over("2")
	if _, ok := g.Drop(tg, "2"); ok {
		t.Fatalf("Drop while idle succeeded")
	}
	g.Cancel()
	if g.State() != Idle || tg.calls != 0 {
		t.Fatalf("state = %s, calls = %d", g.State(), tg.calls)
	}
}

func TestStepClampsHover(t *testing.T) {
	tg := newTarget(t, "A", "B", "C")
	var g Gesture
	g.Start("2")
	g.Step(tg, -5)
	if g.Hovered() != "1" {
		t.Fatalf("hover = %s, want 1", g.Hovered())
	}
	g.Step(tg, 1)
	g.Step(tg, 1)
	g.Step(tg, 1)
	if g.Hovered() != model.ID("3") {
		t.Fatalf("hover = %s, want 3", g.Hovered())
	}
	mv, ok := g.DropHovered(tg)
	if !ok || mv.To != 2 {
		t.Fatalf("DropHovered = %+v, %v", mv, ok)
	}
	if got := order(tg.List); !slices.Equal(got, []string{"A", "C", "B"}) {
		t.Fatalf("order = %v", got)
	}
}
