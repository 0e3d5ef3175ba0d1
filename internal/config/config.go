// Package config loads the viewer's settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	appDir   = "MandelbrotViewer"
	fileName = "config.toml"
)

type Config struct {
	AppID       string  `toml:"app_id"`
	Title       string  `toml:"title"`
	Width       float32 `toml:"width"`
	Height      float32 `toml:"height"`
	PanelWidth  float32 `toml:"panel_width"`
	MarkerSize  float32 `toml:"marker_size"`
	StrokeWidth float32 `toml:"stroke_width"`
	ExportDir   string  `toml:"export_dir"`
}

func Default() *Config {
	return &Config{
		AppID:       "com.github.mandelbrotviewer",
		Title:       "Mandelbrot Viewer",
		Width:       1024,
		Height:      768,
		PanelWidth:  200,
		MarkerSize:  6,
		StrokeWidth: 1,
	}
}

// DefaultPath returns the settings file inside the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] No config at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillZero()
	return cfg, nil
}

// LoadOrCreate loads path, writing the defaults there first when no file exists yet.
func LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := cfg.Save(path); err != nil {
			return cfg, err
		}
		log.Printf("[CONFIG] Wrote default config to %s", path)
		return cfg, nil
	}
	return Load(path)
}

// Save writes c to path, creating the directory when needed.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ExportPath places name in the export directory, or leaves it as is when none is set.
func (c *Config) ExportPath(name string) string {
	if c.ExportDir == "" {
		return name
	}
	return filepath.Join(expandHome(c.ExportDir), name)
}

// expandHome replaces a bare "~" or a leading "~/" with the user's home.
// Other users' homes ("~bob/x") are left alone.
func expandHome(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, dir[1:])
}

// fillZero restores defaults for sizes a file set to zero or below.
func (c *Config) fillZero() {
	d := Default()
	if c.AppID == "" {
		c.AppID = d.AppID
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.PanelWidth <= 0 {
		c.PanelWidth = d.PanelWidth
	}
	if c.MarkerSize <= 0 {
		c.MarkerSize = d.MarkerSize
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = d.StrokeWidth
	}
}
