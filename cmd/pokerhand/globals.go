package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/internal/config"
	"github.com/lox/pokerhand/internal/display"
)

// Globals are flags shared by every command. Flags that are left unset
// fall back to the config file.
type Globals struct {
	Config   string `short:"c" help:"Path to HCL config file" default:"pokerhand.hcl" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)"`
	Debug    bool   `help:"Enable debug logging"`
	Color    string `help:"Colour output (auto, always, never)"`
	ASCII    bool   `help:"Show suits as letters"`

	stdout io.Writer `kong:"-"`
	stderr io.Writer `kong:"-"`
}

// env is everything a command needs once flags and config are merged
type env struct {
	cfg    *config.Config
	logger *log.Logger
	render *display.Renderer
	out    io.Writer
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if g.Color != "" {
		cfg.Display.Color = g.Color
	}
	if g.ASCII {
		cfg.Display.ASCII = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	out, errOut := g.stdout, g.stderr
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	logger, err := newLogger(errOut, cfg.Log)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded configuration", "file", g.Config, "level", cfg.Log.Level, "color", cfg.Display.Color)

	return &env{
		cfg:    cfg,
		logger: logger,
		render: display.New(out, display.Options{Color: cfg.Display.Color, ASCII: cfg.Display.ASCII}),
		out:    out,
	}, nil
}

// newLogger builds the logger described by the log settings
func newLogger(w io.Writer, settings *config.LogSettings) (*log.Logger, error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
	}

	formatter := log.TextFormatter
	switch settings.Formatter {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}), nil
}
