package orderlist

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/idilsaglam/listadmin/internal/model"
)

// IDGenerator hands out fresh identities for newly added items.
type IDGenerator interface {
	NextID() model.ID
}

// Counter is a monotonic, deterministic generator: "1", "2", ...
// The zero value starts at 1.
type Counter struct {
	Prefix string
	n      uint64
}

// NextID implements IDGenerator.
func (c *Counter) NextID() model.ID {
	c.n++
	return model.ID(c.Prefix + strconv.FormatUint(c.n, 10))
}

// UUID generates random v4 identities.
type UUID struct{}

// NextID implements IDGenerator.
func (UUID) NextID() model.ID { return model.ID(uuid.NewString()) }

// NewIDGenerator returns the generator registered under kind
// ("counter" or "uuid"); ok is false for anything else.
func NewIDGenerator(kind string) (IDGenerator, bool) {
	switch kind {
	case "", "counter":
		return &Counter{}, true
	case "uuid":
		return UUID{}, true
	}
	return nil, false
}
