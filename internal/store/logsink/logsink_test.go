package logsink

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/idilsaglam/listadmin/internal/model"
	"github.com/idilsaglam/listadmin/internal/orderlist"
)

func TestSaveLogsEveryRow(t *testing.T) {
	var buf bytes.Buffer
	s := New(slog.New(slog.NewTextHandler(&buf, nil)))

	l := orderlist.New(model.Schema{model.AttrOrbex, model.AttrTickmill}, nil, &orderlist.Counter{})
	if _, err := l.AddItemWith("Algeria", model.SetOf(model.AttrTickmill)); err != nil {
		t.Fatalf("AddItemWith: %v", err)
	}
	if err := s.Save(context.Background(), "technology-brokers", l.Snapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"screen=technology-brokers", "items=1", "rows.1.name=Algeria", "rows.1.on=[tickmill]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line missing %q:\n%s", want, out)
		}
	}
}
