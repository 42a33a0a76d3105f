package store

import (
	"context"
	"errors"
	"testing"

	"github.com/idilsaglam/listadmin/internal/orderlist"
)

type recorder struct {
	name string
	err  error
	seen *[]string
}

func (r recorder) Save(_ context.Context, screen string, _ orderlist.Snapshot) error {
	*r.seen = append(*r.seen, r.name+":"+screen)
	return r.err
}

func TestMultiSavesToAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	var seen []string
	m := Multi{
		recorder{name: "a", seen: &seen},
		recorder{name: "b", err: boom, seen: &seen},
		recorder{name: "c", seen: &seen},
	}
	err := m.Save(context.Background(), "technology-brokers", orderlist.Snapshot{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(seen) != 3 || seen[2] != "c:technology-brokers" {
		t.Fatalf("seen = %v", seen)
	}
}
