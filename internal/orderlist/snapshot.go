package orderlist

import "github.com/idilsaglam/listadmin/internal/model"

// Snapshot is a detached copy of a list, suitable for a save action.
type Snapshot struct {
	Schema model.Schema `json:"schema"`
	Items  []model.Item `json:"items"`
}

// Snapshot copies the current order and attributes. Later mutations of
// the list do not show through.
func (l *List) Snapshot() Snapshot {
	return Snapshot{
		Schema: l.Schema(),
		Items:  l.Items(),
	}
}

// Enabled returns the names of items with attribute a on, in list order.
func (s Snapshot) Enabled(a model.Attr) []string {
	var out []string
	for _, it := range s.Items {
		if it.Has(a) {
			out = append(out, it.Name)
		}
	}
	return out
}
