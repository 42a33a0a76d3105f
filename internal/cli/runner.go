package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/idilsaglam/listadmin/internal/catalog"
	"github.com/idilsaglam/listadmin/internal/config"
	"github.com/idilsaglam/listadmin/internal/orderlist"
	"github.com/idilsaglam/listadmin/internal/store"
	"github.com/idilsaglam/listadmin/internal/store/jsonstore"
	"github.com/idilsaglam/listadmin/internal/store/logsink"
	"github.com/idilsaglam/listadmin/internal/tui"
	"github.com/idilsaglam/listadmin/internal/ui"
)

// Options carry root flag values; empty fields defer to the config.
type Options struct {
	ConfigPath string
	Theme      string
	LogFile    string
	LogLevel   string
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	cmd, a := "ui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	}

	cfg, err := loadConfig(opt)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	ui.SetTheme(cfg.UI.Theme)

	switch cmd {
	case "ui":
		if len(a) > 1 {
			ui.Fail("usage: listadmin ui [screen]")
			return 2
		}
		start := ""
		if len(a) == 1 {
			s, ok := catalog.Lookup(a[0])
			if !ok {
				ui.Fail("unknown screen: " + a[0])
				return 2
			}
			start = s.Key
		}
		return doUI(ctx, cfg, start)

	case "screens":
		return doScreens()

	case "show":
		if len(a) != 1 {
			ui.Fail("usage: listadmin show <screen>")
			return 2
		}
		return doShow(cfg, a[0])

	case "candidates":
		if len(a) != 1 {
			ui.Fail("usage: listadmin candidates <screen>")
			return 2
		}
		return doCandidates(cfg, a[0])
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprintf(ui.Stdout, `listadmin - admin lists in the terminal

Usage:
  listadmin [flags] <subcommand> [args]

Subcommands:
  ui [screen]           Open the interactive editor (default)
  screens               List the available screens
  show <screen>         Print the last saved snapshot of a screen
  candidates <screen>   Print what could still be added to a fresh screen

Flags:
  --config <path>       Config file (default $XDG_CONFIG_HOME/listadmin/config.toml)
  --theme <name>        classic, neon or mono
  --log-file <path>     Write logs here while the editor is open
  --log-level <level>   debug, info, warn or error

Screens: %s
`, strings.Join(catalog.Keys(), ", "))
}

func loadConfig(opt Options) (config.Config, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opt.Theme != "" {
		cfg.UI.Theme = opt.Theme
	}
	if opt.LogFile != "" {
		cfg.Log.File = opt.LogFile
	}
	if opt.LogLevel != "" {
		cfg.Log.Level = opt.LogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the slog logger. While the editor owns the terminal,
// records go to the log file or nowhere.
func newLogger(cfg config.Config, interactive bool) (*slog.Logger, func(), error) {
	lvl, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	var (
		w       io.Writer = ui.Stderr
		closeFn           = func() {}
	)
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	case interactive:
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}

func newSink(cfg config.Config, logger *slog.Logger) store.Sink {
	switch cfg.Sink.Kind {
	case "log":
		return logsink.New(logger)
	case "both":
		return store.Multi{jsonstore.New(cfg.Data.Dir), logsink.New(logger)}
	}
	return jsonstore.New(cfg.Data.Dir)
}

// ---------------------------------------------------
// Subcommands
// ---------------------------------------------------

func doUI(ctx context.Context, cfg config.Config, start string) int {
	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	logger.Info("starting editor", "screen", start, "ids", cfg.IDs.Kind, "sink", cfg.Sink.Kind)
	final, err := tui.Run(ctx, tui.Options{
		Screens: catalog.All(),
		Start:   start,
		NewIDs: func() orderlist.IDGenerator {
			g, _ := orderlist.NewIDGenerator(cfg.IDs.Kind)
			return g
		},
		Sink:   newSink(cfg, logger),
		Logger: logger,
	})
	if err != nil {
		if ctx.Err() != nil {
			// Interrupted; the program already restored the terminal.
			return 0
		}
		ui.Fail("tui: " + err.Error())
		return 1
	}
	if unsaved := final.Unsaved(); len(unsaved) > 0 {
		logger.Warn("discarded unsaved changes", "screens", unsaved)
		fmt.Fprintln(ui.Stderr, ui.Current().Pending.Render("unsaved changes discarded: "+strings.Join(unsaved, ", ")))
	}
	return 0
}

func doScreens() int {
	t := ui.Current()
	lines := []string{t.Title.Render("Screens")}
	for _, s := range catalog.All() {
		cols := make([]string, len(s.Schema))
		for i, a := range s.Schema {
			cols[i] = a.Label()
		}
		line := fmt.Sprintf("%-21s %s", s.Key, s.Title)
		if len(cols) > 0 {
			line += t.Muted.Render("  [" + strings.Join(cols, " ") + "]")
		}
		if s.HasPool() {
			line += t.Muted.Render(fmt.Sprintf("  pool %d", len(s.Pool)))
		}
		if s.Restricts {
			line += t.Muted.Render("  restricts")
		}
		lines = append(lines, line)
	}
	ui.Panel(lines)
	return 0
}

func doShow(cfg config.Config, key string) int {
	s, ok := catalog.Lookup(key)
	if !ok {
		ui.Fail("unknown screen: " + key)
		return 2
	}
	snap, err := jsonstore.New(cfg.Data.Dir).Load(s.Key)
	if err != nil {
		if errors.Is(err, jsonstore.ErrNoSnapshot) {
			ui.Fail(s.Key + " has not been saved yet. Run: listadmin ui " + s.Key)
			return 1
		}
		ui.Fail("load: " + err.Error())
		return 1
	}

	t := ui.Current()
	lines := []string{fmt.Sprintf("%s   %s %d", t.Title.Render(s.Title), t.Accent.Render("Total"), len(snap.Items))}
	for i, it := range snap.Items {
		line := fmt.Sprintf("%3d  %s", i+1, it.Name)
		group := ""
		for _, a := range snap.Schema {
			if g := s.GroupOf(a); g != group {
				group = g
				line += "  " + t.Muted.Render(g+":")
			}
			line += "  " + a.Label() + " " + mark(s, it.Has(a))
		}
		lines = append(lines, line)
	}
	if len(snap.Schema) > 0 && len(snap.Items) > 0 {
		lines = append(lines, "")
		for _, a := range snap.Schema {
			lines = append(lines, fmt.Sprintf("%-10s %s", a.Label(), ui.ProgressBar(len(snap.Enabled(a)), len(snap.Items), 20)))
		}
	}
	ui.Panel(lines)
	return 0
}

// mark renders one saved cell the way the editor does.
func mark(s catalog.Screen, on bool) string {
	t := ui.Current()
	switch {
	case s.Restricts && on:
		return t.Error.Render(t.SymFail)
	case s.Restricts:
		return t.Success.Render(t.SymOK)
	case on:
		return t.Success.Render(t.BoxChecked)
	}
	return t.BoxUnchecked
}

func doCandidates(cfg config.Config, key string) int {
	s, ok := catalog.Lookup(key)
	if !ok {
		ui.Fail("unknown screen: " + key)
		return 2
	}
	if !s.HasPool() {
		ui.Fail(s.Key + " takes free-text names; it has no candidate pool")
		return 2
	}
	ids, _ := orderlist.NewIDGenerator(cfg.IDs.Kind)
	l, err := s.Mount(ids)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	for _, name := range l.AvailableCandidates() {
		fmt.Fprintln(ui.Stdout, name)
	}
	return 0
}
