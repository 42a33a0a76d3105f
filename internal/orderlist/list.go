// Package orderlist holds the reorderable toggle list that backs every
// admin screen: an ordered sequence of named items, each carrying the
// boolean attributes of a fixed schema, plus the candidate pool that
// gates what may be added.
//
// A List is owned by a single event loop and is not safe for concurrent
// use. Hand Snapshot copies to anything running elsewhere.
package orderlist

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/listadmin/internal/model"
)

// List is an ordered set of items with unique identities and unique names.
type List struct {
	schema   model.Schema
	pool     []string
	defaults model.AttrSet
	ids      IDGenerator
	items    []model.Item
}

// Option tunes a List at construction.
type Option func(*List)

// WithDefaults sets the attributes a freshly added item starts with.
// Attributes outside the schema are dropped.
func WithDefaults(s model.AttrSet) Option {
	return func(l *List) { l.defaults = s }
}

// New builds an empty list. A nil ids falls back to a Counter.
func New(schema model.Schema, pool []string, ids IDGenerator, opts ...Option) *List {
	if ids == nil {
		ids = &Counter{}
	}
	l := &List{
		schema: append(model.Schema(nil), schema...),
		pool:   append([]string(nil), pool...),
		ids:    ids,
	}
	for _, o := range opts {
		o(l)
	}
	l.defaults = l.schema.Restrict(l.defaults)
	return l
}

// Schema returns the attribute columns of the list.
func (l *List) Schema() model.Schema { return append(model.Schema(nil), l.schema...) }

// PoolSize is the number of names in the candidate pool.
func (l *List) PoolSize() int { return len(l.pool) }

// Len is the number of items.
func (l *List) Len() int { return len(l.items) }

// Item returns the item at index i.
func (l *List) Item(i int) (model.Item, bool) {
	if i < 0 || i >= len(l.items) {
		return model.Item{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the items in display order.
func (l *List) Items() []model.Item { return append([]model.Item(nil), l.items...) }

// IndexOf returns the current position of id.
func (l *List) IndexOf(id model.ID) (int, bool) {
	for i, it := range l.items {
		if it.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns the item carrying id.
func (l *List) Lookup(id model.ID) (model.Item, bool) {
	i, ok := l.IndexOf(id)
	if !ok {
		return model.Item{}, false
	}
	return l.items[i], true
}

// Contains reports whether an item named name is present. Names match
// exactly once surrounding space is trimmed.
func (l *List) Contains(name string) bool {
	name = strings.TrimSpace(name)
	for _, it := range l.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// AddItem appends name with the list's default attributes.
func (l *List) AddItem(name string) (model.Item, error) {
	return l.AddItemWith(name, l.defaults)
}

// AddItemWith appends name with the given attributes. Empty names and
// names already present are rejected with ErrInvalidInput.
func (l *List) AddItemWith(name string, attrs model.AttrSet) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, fmt.Errorf("add: empty name: %w", ErrInvalidInput)
	}
	if l.Contains(name) {
		return model.Item{}, fmt.Errorf("add %q: already listed: %w", name, ErrInvalidInput)
	}
	it := model.Item{
		ID:    l.freshID(),
		Name:  name,
		Attrs: l.schema.Restrict(attrs),
	}
	l.items = append(l.items, it)
	return it, nil
}

// freshID skips any generated identity that is already taken, which can
// happen when items were inserted from an earlier session.
func (l *List) freshID() model.ID {
	for {
		id := l.ids.NextID()
		if _, taken := l.IndexOf(id); !taken {
			return id
		}
	}
}

// Insert puts an existing item back at index (clamped to [0, Len]).
// It is how undo restores a removed row with its original identity.
func (l *List) Insert(index int, it model.Item) error {
	it.Name = strings.TrimSpace(it.Name)
	if it.ID == "" || it.Name == "" {
		return fmt.Errorf("insert: missing id or name: %w", ErrInvalidInput)
	}
	if _, taken := l.IndexOf(it.ID); taken {
		return fmt.Errorf("insert %s: identity in use: %w", it.ID, ErrInvalidInput)
	}
	if l.Contains(it.Name) {
		return fmt.Errorf("insert %q: already listed: %w", it.Name, ErrInvalidInput)
	}
	index = max(0, min(index, len(l.items)))
	it.Attrs = l.schema.Restrict(it.Attrs)
	l.items = append(l.items, model.Item{})
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = it
	return nil
}

// RemoveItem deletes the item carrying id and returns it.
func (l *List) RemoveItem(id model.ID) (model.Item, error) {
	i, ok := l.IndexOf(id)
	if !ok {
		return model.Item{}, fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	it := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return it, nil
}

// ToggleAttribute flips attribute a on the item carrying id.
func (l *List) ToggleAttribute(id model.ID, a model.Attr) error {
	if !l.schema.Contains(a) {
		return fmt.Errorf("toggle %s: %w", a, ErrInvalidInput)
	}
	i, ok := l.IndexOf(id)
	if !ok {
		return fmt.Errorf("toggle %s on %s: %w", a, id, ErrNotFound)
	}
	l.items[i].Attrs = l.items[i].Attrs.Flip(a)
	return nil
}

// Reorder moves the item at src so that it ends up at dst. dst is read
// against the sequence with src already removed, so moving 0 to 2 in
// [A B C D] gives [B C A D]. Equal indices are a no-op.
func (l *List) Reorder(src, dst int) error {
	n := len(l.items)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return fmt.Errorf("reorder %d -> %d (len %d): %w", src, dst, n, ErrOutOfRange)
	}
	if src == dst {
		return nil
	}
	it := l.items[src]
	if src < dst {
		copy(l.items[src:dst], l.items[src+1:dst+1])
	} else {
		copy(l.items[dst+1:src+1], l.items[dst:src])
	}
	l.items[dst] = it
	return nil
}

// AvailableCandidates returns the pool names not yet in the list,
// preserving pool order.
func (l *List) AvailableCandidates() []string {
	out := make([]string, 0, len(l.pool))
	for _, name := range l.pool {
		if !l.Contains(name) {
			out = append(out, name)
		}
	}
	return out
}
