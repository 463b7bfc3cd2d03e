package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"iso-city/internal/config"
)

// Flags represents the command-line parameters for the application.
type Flags struct {
	ConfigPath string
	LogLevel   string
	Overrides  config.Overrides
}

// NewFlags returns Flags populated with the stock defaults.
func NewFlags() *Flags {
	d := config.Default()
	return &Flags{
		LogLevel: "info",
		Overrides: config.Overrides{
			Width:  d.World.Width,
			Height: d.World.Height,
			Budget: d.World.Budget,
			TPS:    d.Display.TPS,
		},
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to a YAML config file")
	fs.StringVar(&f.LogLevel, "log-level", f.LogLevel, "log level: debug, info, warn or error")
	fs.IntVar(&f.Overrides.Width, "w", f.Overrides.Width, "grid width in tiles")
	fs.IntVar(&f.Overrides.Height, "h", f.Overrides.Height, "grid height in tiles")
	fs.IntVar(&f.Overrides.Budget, "budget", f.Overrides.Budget, "starting cash")
	fs.IntVar(&f.Overrides.TPS, "tps", f.Overrides.TPS, "ticks per second")
	fs.StringVar(&f.Overrides.Atlas, "atlas", f.Overrides.Atlas, "tile atlas PNG, generated sprites when empty")
}

// Resolve loads the config file, if any, and layers explicitly set flags on
// top of it.
func (f *Flags) Resolve(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		loaded, err := config.Load(f.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	explicit := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })
	config.Merge(&cfg, f.Overrides, explicit)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Logger builds the process logger at the requested level.
func (f *Flags) Logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(f.LogLevel))); err != nil {
		return nil, fmt.Errorf("bad -log-level %q: %w", f.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
