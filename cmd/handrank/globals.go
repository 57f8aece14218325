package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/handrank/cmd/handrank/shared"
	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/internal/display"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `kong:"default='handrank.hcl',help='Path to HCL config file (missing file uses defaults)'"`
	LogLevel string `kong:"help='Log level (debug|info|warn|error), overrides config'"`
	NoColor  bool   `kong:"help='Disable colored output'"`

	stdout io.Writer
	stderr io.Writer
}

// env is everything a command needs once flags and config are resolved
type env struct {
	config   *config.Config
	logger   *log.Logger
	renderer *display.Renderer
}

func (g *Globals) setup() (*env, error) {
	stdout, stderr := g.stdout, g.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.NoColor {
		color := false
		cfg.Display.Color = &color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := shared.SetupLogger(stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &env{
		config:   cfg,
		logger:   logger,
		renderer: display.NewRenderer(stdout, cfg.Display.ColorEnabled()),
	}, nil
}
