package config

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Default values for configuration
const (
	DefaultPoints    = 11
	DefaultLeftName  = "PLAYER 1"
	DefaultRightName = "PLAYER 2"
)

// Config holds the application configuration
type Config struct {
	PointsToWin int
	LeftName    string
	RightName   string
	Mute        bool
	Keys        KeyConfig
}

// KeyConfig names the key bound to each action. Values are single
// characters ("w") or special key names ("up", "space"); the input
// layer resolves them against the terminal.
type KeyConfig struct {
	LeftUp    string `toml:"left_up"`
	LeftDown  string `toml:"left_down"`
	RightUp   string `toml:"right_up"`
	RightDown string `toml:"right_down"`
	Serve     string `toml:"serve"`
	Pause     string `toml:"pause"`
	Reset     string `toml:"reset"`
}

// DefaultKeys returns the standard two-player layout: WASD-style keys
// on the left, arrows on the right.
func DefaultKeys() KeyConfig {
	return KeyConfig{
		LeftUp:    "w",
		LeftDown:  "s",
		RightUp:   "up",
		RightDown: "down",
		Serve:     "space",
		Pause:     "p",
		Reset:     "r",
	}
}

// fileConfig mirrors Config for the TOML file. Points and mute use
// pointers so an explicit 0/false in the file is distinguishable from
// an absent key.
type fileConfig struct {
	Points *int      `toml:"points"`
	Left   string    `toml:"left"`
	Right  string    `toml:"right"`
	Mute   *bool     `toml:"mute"`
	Keys   KeyConfig `toml:"keys"`
}

// ParseArgs parses command line arguments and returns a Config.
// Precedence from weakest to strongest: built-in defaults, the TOML
// file named by --config, then flags given explicitly.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("termpong", flag.ContinueOnError)

	points := fs.Int("points", DefaultPoints, "points to win the match (0 plays endless)")
	left := fs.String("left", DefaultLeftName, "left player display name")
	right := fs.String("right", DefaultRightName, "right player display name")
	mute := fs.Bool("mute", false, "disable sound")
	file := fs.String("config", "", "path to a TOML config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		PointsToWin: DefaultPoints,
		LeftName:    DefaultLeftName,
		RightName:   DefaultRightName,
		Keys:        DefaultKeys(),
	}

	if *file != "" {
		if err := cfg.loadFile(*file); err != nil {
			return nil, err
		}
	}

	// Flags the user actually passed win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "points":
			cfg.PointsToWin = *points
		case "left":
			cfg.LeftName = *left
		case "right":
			cfg.RightName = *right
		case "mute":
			cfg.Mute = *mute
		}
	})

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile layers a TOML file over the current values. Unknown keys
// are an error so a typo does not silently fall back to a default.
func (c *Config) loadFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config file: unknown key %q", undecoded[0].String())
	}

	if fc.Points != nil {
		c.PointsToWin = *fc.Points
	}
	if fc.Left != "" {
		c.LeftName = fc.Left
	}
	if fc.Right != "" {
		c.RightName = fc.Right
	}
	if fc.Mute != nil {
		c.Mute = *fc.Mute
	}
	applyKeys(&c.Keys, fc.Keys)
	return nil
}

// applyKeys overrides bindings the file actually names, leaving the
// rest on their defaults.
func applyKeys(dst *KeyConfig, src KeyConfig) {
	if src.LeftUp != "" {
		dst.LeftUp = src.LeftUp
	}
	if src.LeftDown != "" {
		dst.LeftDown = src.LeftDown
	}
	if src.RightUp != "" {
		dst.RightUp = src.RightUp
	}
	if src.RightDown != "" {
		dst.RightDown = src.RightDown
	}
	if src.Serve != "" {
		dst.Serve = src.Serve
	}
	if src.Pause != "" {
		dst.Pause = src.Pause
	}
	if src.Reset != "" {
		dst.Reset = src.Reset
	}
}

func (c *Config) validate() error {
	if c.PointsToWin < 0 {
		return fmt.Errorf("points must be 0 or more, got %d", c.PointsToWin)
	}
	if c.LeftName == "" || c.RightName == "" {
		return fmt.Errorf("player names must not be empty")
	}
	return nil
}
