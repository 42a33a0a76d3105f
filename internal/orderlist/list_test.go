package orderlist

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/idilsaglam/listadmin/internal/model"
)

func names(l *List) []string {
	out := make([]string, 0, l.Len())
	for _, it := range l.Items() {
		out = append(out, it.Name)
	}
	return out
}

func ids(l *List) []model.ID {
	out := make([]model.ID, 0, l.Len())
	for _, it := range l.Items() {
		out = append(out, it.ID)
	}
	return out
}

func newABC(t *testing.T) *List {
	t.Helper()
	l := New(model.Schema{model.AttrActive}, nil, &Counter{})
	for _, n := range []string{"A", "B", "C"} {
		if _, err := l.AddItem(n); err != nil {
			t.Fatalf("AddItem(%q): %v", n, err)
		}
	}
	return l
}

func TestReorderMovesRelativeToShortenedSequence(t *testing.T) {
	tests := []struct {
		name     string
		start    []string
		src, dst int
		want     []string
	}{
		{name: "front to middle", start: []string{"A", "B", "C", "D"}, src: 0, dst: 2, want: []string{"B", "C", "A", "D"}},
		{name: "front to end", start: []string{"A", "B", "C"}, src: 0, dst: 2, want: []string{"B", "C", "A"}},
		{name: "end to front", start: []string{"A", "B", "C", "D"}, src: 3, dst: 0, want: []string{"D", "A", "B", "C"}},
		{name: "adjacent down", start: []string{"A", "B", "C"}, src: 1, dst: 2, want: []string{"A", "C", "B"}},
		{name: "adjacent up", start: []string{"A", "B", "C"}, src: 1, dst: 0, want: []string{"B", "A", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(nil, nil, nil)
			for _, n := range tt.start {
				if _, err := l.AddItem(n); err != nil {
					t.Fatalf("AddItem(%q): %v", n, err)
				}
			}
			if err := l.Reorder(tt.src, tt.dst); err != nil {
				t.Fatalf("Reorder(%d, %d): %v", tt.src, tt.dst, err)
			}
			if got := names(l); !slices.Equal(got, tt.want) {
				t.Fatalf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReorderIsAPermutation(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for src := 0; src < n; src++ {
			for dst := 0; dst < n; dst++ {
				l := New(nil, nil, &Counter{})
				for i := 0; i < n; i++ {
					if _, err := l.AddItem(fmt.Sprintf("item-%d", i)); err != nil {
						t.Fatalf("AddItem: %v", err)
					}
				}
				before := ids(l)
				if err := l.Reorder(src, dst); err != nil {
					t.Fatalf("Reorder(%d, %d) on len %d: %v", src, dst, n, err)
				}
				after := ids(l)
				if after[dst] != before[src] {
					t.Fatalf("len %d: Reorder(%d, %d) put %s at dst, want %s", n, src, dst, after[dst], before[src])
				}
				slices.Sort(before)
				slices.Sort(after)
				if !slices.Equal(before, after) {
					t.Fatalf("len %d: Reorder(%d, %d) changed identities: %v vs %v", n, src, dst, before, after)
				}
			}
		}
	}
}

func TestReorderSameIndexIsNoop(t *testing.T) {
	l := newABC(t)
	for i := 0; i < l.Len(); i++ {
		before := ids(l)
		if err := l.Reorder(i, i); err != nil {
			t.Fatalf("Reorder(%d, %d): %v", i, i, err)
		}
		if got := ids(l); !slices.Equal(got, before) {
			t.Fatalf("Reorder(%d, %d) changed order: %v -> %v", i, i, before, got)
		}
	}
}

func TestReorderOutOfRangeIsNoop(t *testing.T) {
	l := newABC(t)
	for _, tc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {7, 7}} {
		err := l.Reorder(tc[0], tc[1])
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Reorder(%d, %d) err = %v, want ErrOutOfRange", tc[0], tc[1], err)
		}
		if got := names(l); !slices.Equal(got, []string{"A", "B", "C"}) {
			t.Fatalf("order changed after rejected reorder: %v", got)
		}
	}
}

func TestAddItemRejectsEmptyAndDuplicate(t *testing.T) {
	l := New(nil, []string{"X", "Y"}, &Counter{})

	if _, err := l.AddItem("X"); err != nil {
		t.Fatalf("AddItem(X): %v", err)
	}
	if got := l.AvailableCandidates(); !slices.Equal(got, []string{"Y"}) {
		t.Fatalf("AvailableCandidates() = %v, want [Y]", got)
	}

	for _, name := range []string{"X", " X ", "", "   "} {
		if _, err := l.AddItem(name); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("AddItem(%q) err = %v, want ErrInvalidInput", name, err)
		}
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
}

func TestNamesMatchExactly(t *testing.T) {
	l := New(nil, []string{"France", "Spain"}, &Counter{})
	if _, err := l.AddItem("france"); err != nil {
		t.Fatalf("AddItem(france): %v", err)
	}
	if !l.Contains(" france ") || l.Contains("France") {
		t.Fatalf("Contains does not match names exactly")
	}
	if got := l.AvailableCandidates(); !slices.Equal(got, []string{"France", "Spain"}) {
		t.Fatalf("AvailableCandidates() = %v, want both pool names", got)
	}
	if l.PoolSize() != 2 {
		t.Fatalf("PoolSize() = %d", l.PoolSize())
	}
}

func TestAddItemAssignsFreshIdentityAndDefaults(t *testing.T) {
	l := New(model.Schema{model.AttrMT4, model.AttrMT5}, nil, &Counter{Prefix: "row-"},
		WithDefaults(model.SetOf(model.AttrMT4, model.AttrStocks)))

	a, err := l.AddItem("Alpha")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	b, err := l.AddItem("Beta")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if a.ID != "row-1" || b.ID != "row-2" {
		t.Fatalf("ids = %s, %s; want row-1, row-2", a.ID, b.ID)
	}
	if !a.Has(model.AttrMT4) || a.Has(model.AttrMT5) {
		t.Fatalf("defaults not applied: %+v", a)
	}
	if a.Has(model.AttrStocks) {
		t.Fatalf("attribute outside schema leaked into item: %+v", a)
	}
}

type fixedIDs struct {
	seq []model.ID
	i   int
}

func (f *fixedIDs) NextID() model.ID {
	id := f.seq[f.i]
	f.i++
	return id
}

func TestAddItemSkipsCollidingIdentity(t *testing.T) {
	l := New(nil, nil, &fixedIDs{seq: []model.ID{"1", "1", "2"}})
	if _, err := l.AddItem("A"); err != nil {
		t.Fatalf("AddItem(A): %v", err)
	}
	b, err := l.AddItem("B")
	if err != nil {
		t.Fatalf("AddItem(B): %v", err)
	}
	if b.ID != "2" {
		t.Fatalf("B.ID = %s, want 2", b.ID)
	}
}

func TestRemoveItemRestoresCandidate(t *testing.T) {
	l := New(nil, []string{"France", "Spain", "Italy"}, &Counter{})
	it, err := l.AddItem("Spain")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if slices.Contains(l.AvailableCandidates(), "Spain") {
		t.Fatalf("Spain still available after add")
	}
	if _, err := l.RemoveItem(it.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if got := l.AvailableCandidates(); !slices.Equal(got, []string{"France", "Spain", "Italy"}) {
		t.Fatalf("AvailableCandidates() = %v, want pool order", got)
	}
}

func TestRemoveUnknownIdentityIsNoop(t *testing.T) {
	l := newABC(t)
	if _, err := l.RemoveItem("99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemoveItem(99) err = %v, want ErrNotFound", err)
	}
	if got := names(l); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("list changed: %v", got)
	}
}

func TestToggleAttributeIsAnInvolution(t *testing.T) {
	l := newABC(t)
	if it, _ := l.Lookup("2"); it.Has(model.AttrActive) {
		t.Fatalf("item 2 starts active")
	}
	if err := l.ToggleAttribute("2", model.AttrActive); err != nil {
		t.Fatalf("ToggleAttribute: %v", err)
	}
	if it, _ := l.Lookup("2"); !it.Has(model.AttrActive) {
		t.Fatalf("item 2 not active after first toggle")
	}
	if err := l.ToggleAttribute("2", model.AttrActive); err != nil {
		t.Fatalf("ToggleAttribute: %v", err)
	}
	if it, _ := l.Lookup("2"); it.Has(model.AttrActive) {
		t.Fatalf("item 2 still active after second toggle")
	}
}

func TestToggleAttributeRejectsUnknownTargets(t *testing.T) {
	l := newABC(t)
	before := l.Snapshot()

	if err := l.ToggleAttribute("42", model.AttrActive); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}
	if err := l.ToggleAttribute("1", model.AttrMT5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("attr outside schema err = %v, want ErrInvalidInput", err)
	}
	if !slices.Equal(l.Items(), before.Items) {
		t.Fatalf("list changed by rejected toggles")
	}
}

func TestInsertRestoresAtIndex(t *testing.T) {
	l := newABC(t)
	removed, err := l.RemoveItem("2")
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if err := l.Insert(1, removed); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := names(l); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("order after undo = %v", got)
	}
	if err := l.Insert(0, removed); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("duplicate Insert err = %v, want ErrInvalidInput", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	l := newABC(t)
	snap := l.Snapshot()
	if err := l.Reorder(0, 2); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if err := l.ToggleAttribute("1", model.AttrActive); err != nil {
		t.Fatalf("ToggleAttribute: %v", err)
	}
	if snap.Items[0].Name != "A" || snap.Items[0].Has(model.AttrActive) {
		t.Fatalf("snapshot observed later mutation: %+v", snap.Items[0])
	}
	if got := l.Snapshot().Enabled(model.AttrActive); !slices.Equal(got, []string{"A"}) {
		t.Fatalf("Enabled(active) = %v, want [A]", got)
	}
}

func TestNewIDGenerator(t *testing.T) {
	if g, ok := NewIDGenerator("counter"); !ok || g.NextID() != "1" {
		t.Fatalf("counter generator not deterministic")
	}
	g, ok := NewIDGenerator("uuid")
	if !ok {
		t.Fatalf("uuid generator missing")
	}
	if a, b := g.NextID(), g.NextID(); a == b || len(a) != 36 {
		t.Fatalf("uuid ids = %q, %q", a, b)
	}
	if _, ok := NewIDGenerator("timestamp"); ok {
		t.Fatalf("unknown kind accepted")
	}
}
