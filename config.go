package main

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	StoragePath   string  `yaml:"storage_path"`
	SaveDirectory string  `yaml:"save_directory"`
	LogFile       string  `yaml:"log_file"`
	Verbose       bool    `yaml:"verbose"`
	Confirmations bool    `yaml:"confirmations"`
	Ephemeral     bool    `yaml:"ephemeral"`
	Scale         float64 `yaml:"scale"`
	CanvasSize    float64 `yaml:"canvas_size"`
	CellWidth     float64 `yaml:"cell_width"`
	CellHeight    float64 `yaml:"cell_height"`
}

func defaultConfig() *Config {
	return &Config{
		StoragePath:   defaultStoragePath(),
		Confirmations: true,
		Scale:         defaultScale,
		CanvasSize:    defaultCanvasSize,
		CellWidth:     defaultCellWidth,
		CellHeight:    defaultCellHeight,
	}
}

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".quadrant", "storage.db")
	}
	return filepath.Join(dir, "quadrant", "storage.db")
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".quadrantrc")
}

// loadConfig reads the YAML rc file at path. A missing or unreadable file
// yields the defaults, and any invalid value falls back to its default.
func loadConfig(path string) *Config {
	config := defaultConfig()
	if path == "" {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}
	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return config
	}

	// Confirmations defaults to true, so only an explicit key may clear it.
	var keys map[string]any
	if yaml.Unmarshal(data, &keys) == nil {
		if _, ok := keys["confirmations"]; ok {
			config.Confirmations = fromFile.Confirmations
		}
	}

	if fromFile.StoragePath != "" {
		config.StoragePath = fromFile.StoragePath
	}
	config.SaveDirectory = fromFile.SaveDirectory
	config.LogFile = fromFile.LogFile
	config.Verbose = fromFile.Verbose
	config.Ephemeral = fromFile.Ephemeral
	if fromFile.Scale > 0 {
		config.Scale = fromFile.Scale
	}
	if fromFile.CanvasSize > 0 {
		config.CanvasSize = fromFile.CanvasSize
	}
	if fromFile.CellWidth > 0 {
		config.CellWidth = fromFile.CellWidth
	}
	if fromFile.CellHeight > 0 {
		config.CellHeight = fromFile.CellHeight
	}

	config.normalize()
	return config
}

// normalize expands ~ and makes configured paths absolute.
func (c *Config) normalize() {
	c.StoragePath = expandPath(c.StoragePath)
	c.SaveDirectory = expandPath(c.SaveDirectory)
	c.LogFile = expandPath(c.LogFile)
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) Mapper() Mapper {
	return NewMapper(c.Scale, c.CanvasSize)
}

func (c *Config) Grid() Grid {
	return NewGrid(c.Mapper(), c.CanvasSize, c.CellWidth, c.CellHeight)
}
