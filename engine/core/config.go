package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	ClearColor [4]float32 `toml:"clear_color"`
}

// LoadConfig reads a TOML config file over def. A missing file is not
// an error; def is returned as-is.
func LoadConfig(path string, def Config) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg := def
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return def, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
