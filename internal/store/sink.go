// Package store holds the save targets a screen hands its snapshots to.
// Nothing here reads state back into a live list.
package store

import (
	"context"
	"errors"

	"github.com/idilsaglam/listadmin/internal/orderlist"
)

// Sink receives a snapshot of one screen.
type Sink interface {
	Save(ctx context.Context, screen string, snap orderlist.Snapshot) error
}

// Multi saves to every sink and joins their errors.
type Multi []Sink

// Save implements Sink.
func (m Multi) Save(ctx context.Context, screen string, snap orderlist.Snapshot) error {
	var errs []error
	for _, s := range m {
		if err := s.Save(ctx, screen, snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
