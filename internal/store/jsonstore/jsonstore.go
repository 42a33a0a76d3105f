package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/idilsaglam/listadmin/internal/orderlist"
)

// JSON-backed snapshots. One human-readable file per screen.
// No locking; fine for a local single-user tool.

// ErrNoSnapshot is returned by Load when a screen was never saved.
var ErrNoSnapshot = errors.New("no saved snapshot")

var screenKey = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Store writes snapshots under Dir.
type Store struct {
	Dir string
}

// New returns a store rooted at dir.
func New(dir string) *Store { return &Store{Dir: dir} }

func (s *Store) path(screen string) (string, error) {
	if !screenKey.MatchString(screen) {
		return "", fmt.Errorf("bad screen key %q", screen)
	}
	return filepath.Join(s.Dir, screen+".json"), nil
}

// Save writes snap to <Dir>/<screen>.json, replacing it atomically.
func (s *Store) Save(ctx context.Context, screen string, snap orderlist.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(screen)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(s.Dir, "."+screen+"-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Load reads the last snapshot saved for screen.
func (s *Store) Load(screen string) (orderlist.Snapshot, error) {
	p, err := s.path(screen)
	if err != nil {
		return orderlist.Snapshot{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return orderlist.Snapshot{}, fmt.Errorf("%s: %w", screen, ErrNoSnapshot)
		}
		return orderlist.Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	var snap orderlist.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return orderlist.Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return snap, nil
}
