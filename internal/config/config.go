package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handrank/poker"
)

// Config represents the complete handrank configuration
type Config struct {
	LogLevel   string              `hcl:"log_level,optional"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Display    *DisplaySettings    `hcl:"display,block"`
}

// SimulationSettings controls the rank frequency simulation
type SimulationSettings struct {
	Hands        int   `hcl:"hands,optional"`
	CardsPerHand int   `hcl:"cards_per_hand,optional"`
	Workers      int   `hcl:"workers,optional"`
	Seed         int64 `hcl:"seed,optional"` // 0 derives a seed from the clock
}

// DisplaySettings controls terminal output
type DisplaySettings struct {
	Color *bool `hcl:"color,optional"` // unset means true
}

// ColorEnabled reports whether output should be styled
func (d *DisplaySettings) ColorEnabled() bool {
	return d.Color == nil || *d.Color
}

// Default returns the default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults to anything left unset
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Hands == 0 {
		c.Simulation.Hands = 10000
	}
	if c.Simulation.CardsPerHand == 0 {
		c.Simulation.CardsPerHand = 7
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = min(runtime.NumCPU(), 8)
	}
	if c.Display == nil {
		c.Display = &DisplaySettings{}
	}
	if c.Display.Color == nil {
		color := true
		c.Display.Color = &color
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	sim := c.Simulation
	if sim.Hands < 1 {
		return fmt.Errorf("simulation: hands must be positive, got %d", sim.Hands)
	}
	if sim.CardsPerHand < 1 || sim.CardsPerHand > poker.DeckSize {
		return fmt.Errorf("simulation: cards_per_hand must be between 1 and %d, got %d", poker.DeckSize, sim.CardsPerHand)
	}
	if sim.Workers < 1 {
		return fmt.Errorf("simulation: workers must be positive, got %d", sim.Workers)
	}

	return nil
}
