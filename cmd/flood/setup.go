package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/colour-flood/internal/config"
	"github.com/vovakirdan/colour-flood/internal/core"
	"github.com/vovakirdan/colour-flood/internal/games/flood"
	"github.com/vovakirdan/colour-flood/internal/games/flood/palettes"
)

// newLogger builds the CLI logger from --log-level and --log-file.
// Full-screen commands pass fullScreen so logs never land on the alt screen.
// The returned func closes the log file, if any.
func newLogger(fullScreen bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("bad --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case fullScreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "flood",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the flood config from the global flags and installs it
// for every variant created afterwards.
func loadConfig() (config.FloodConfig, error) {
	cfg, err := config.LoadFlood(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyFloodPreset(&cfg, preset)

	if flagPalettes != "" {
		cat, err := palettes.LoadFile(flagPalettes)
		if err != nil {
			return cfg, err
		}
		cfg.Palettes = palettes.ToSpecs(cat.Palettes())
		if cat.Index(cfg.Palette.Start) < 0 {
			cfg.Palette.Start = ""
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("palettes %s: %w", flagPalettes, err)
		}
	}

	if flagPalette != "" {
		cat, err := cfg.Catalog()
		if err != nil {
			return cfg, err
		}
		if _, err := cat.Get(flagPalette); err != nil {
			return cfg, err
		}
		cfg.Palette.Start = flagPalette
	}

	flood.SetConfig(cfg)
	return cfg, nil
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fail reports err on stderr and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
