// Package logsink "saves" a snapshot by logging it.
package logsink

import (
	"context"
	"log/slog"

	"github.com/idilsaglam/listadmin/internal/orderlist"
)

// Sink logs every snapshot it receives at info level.
type Sink struct {
	Logger *slog.Logger
}

// New returns a sink writing to logger (slog.Default when nil).
func New(logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{Logger: logger}
}

// Save implements store.Sink.
func (s *Sink) Save(ctx context.Context, screen string, snap orderlist.Snapshot) error {
	rows := make([]any, 0, len(snap.Items))
	for i, it := range snap.Items {
		var on []string
		for _, a := range snap.Schema {
			if it.Has(a) {
				on = append(on, a.String())
			}
		}
		rows = append(rows, slog.Group(string(it.ID),
			slog.Int("pos", i),
			slog.String("name", it.Name),
			slog.Any("on", on),
		))
	}
	s.Logger.InfoContext(ctx, "snapshot saved",
		slog.String("screen", screen),
		slog.Int("items", len(snap.Items)),
		slog.Group("rows", rows...),
	)
	return nil
}
