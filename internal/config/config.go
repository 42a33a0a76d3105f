package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Data DataConfig
	IDs  IDsConfig
	Log  LogConfig
	UI   UIConfig
	Sink SinkConfig
}

// DataConfig holds where saved snapshots live.
type DataConfig struct {
	Dir string
}

// IDsConfig picks the identity generator ("counter" or "uuid").
type IDsConfig struct {
	Kind string
}

// LogConfig holds slog settings. File is used while the TUI owns the
// terminal; empty means discard.
type LogConfig struct {
	File  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// SinkConfig picks where the save action sends snapshots
// ("json", "log" or "both").
type SinkConfig struct {
	Kind string
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "listadmin")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "listadmin")
}

func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "listadmin")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "listadmin")
}

// Load reads configuration from file and env. path overrides the
// LISTADMIN_CONFIG env var; env var overrides use prefix LISTADMIN_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("data.dir", dataDir())
	v.SetDefault("ids.kind", "counter")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("sink.kind", "json")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("LISTADMIN_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LISTADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the default location is optional.
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	var errs []error
	switch c.IDs.Kind {
	case "counter", "uuid":
	default:
		errs = append(errs, fmt.Errorf("ids.kind: want counter or uuid, got %q", c.IDs.Kind))
	}
	switch c.Sink.Kind {
	case "json", "log", "both":
	default:
		errs = append(errs, fmt.Errorf("sink.kind: want json, log or both, got %q", c.Sink.Kind))
	}
	switch strings.ToLower(c.UI.Theme) {
	case "classic", "neon", "mono":
	default:
		errs = append(errs, fmt.Errorf("ui.theme: want classic, neon or mono, got %q", c.UI.Theme))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Data.Dir == "" && c.Sink.Kind != "log" {
		errs = append(errs, errors.New("data.dir: must be set for the json sink"))
	}
	return errors.Join(errs...)
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
