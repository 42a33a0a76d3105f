package model

// ID is the stable identity of an Item. It is assigned once, on add,
// and never changes afterwards.
type ID string

// Item is one row of an admin list: a name plus its boolean attributes.
// Display order belongs to the list, not the item.
type Item struct {
	ID    ID      `json:"id"`
	Name  string  `json:"name"`
	Attrs AttrSet `json:"attrs"`
}

// Has reports whether attribute a is switched on.
func (it Item) Has(a Attr) bool { return it.Attrs.Has(a) }
