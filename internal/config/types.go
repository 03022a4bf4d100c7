package config

import (
	"time"
)

// Config is the swatch configuration document (~/.swatch/config.yaml).
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Palette   PaletteConfig   `yaml:"palette"`
	Reference ReferenceConfig `yaml:"reference"`
	Export    ExportConfig    `yaml:"export"`
	Editor    EditorConfig    `yaml:"editor"`
	Log       LogConfig       `yaml:"log"`
}

// StorageConfig selects where palette state lives.
type StorageConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=file sqlite memory"`
	// Path defaults to state.json or state.db in the swatch directory.
	Path string `yaml:"path,omitempty"`
}

// PaletteConfig holds palette sizing and the initial display formats.
type PaletteConfig struct {
	Size    int      `yaml:"size" validate:"min=1,max=20"`
	Formats []string `yaml:"formats" validate:"dive,format_tag"`
}

// ReferenceConfig points at an optional custom reference color list.
type ReferenceConfig struct {
	File string `yaml:"file,omitempty"`
}

// ExportConfig holds artifact defaults.
type ExportConfig struct {
	Dir      string         `yaml:"dir" validate:"required"`
	Image    ImageConfig    `yaml:"image"`
	Document DocumentConfig `yaml:"document"`
}

// ImageConfig sizes the PNG canvas.
type ImageConfig struct {
	Width      int    `yaml:"width" validate:"min=300,max=8192"`
	Height     int    `yaml:"height" validate:"min=200,max=8192"`
	Caption    string `yaml:"caption" validate:"max=60"`
	Background string `yaml:"background" validate:"hexcolor6"`
}

// DocumentConfig configures the PDF export.
type DocumentConfig struct {
	Title string `yaml:"title" validate:"required,max=100"`
}

// EditorConfig tunes the interactive editor timings.
type EditorConfig struct {
	Debounce    time.Duration `yaml:"debounce" validate:"min=0,max=10s"`
	RemoveDelay time.Duration `yaml:"remove_delay" validate:"min=0,max=5s"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// File receives TUI logs; empty disables logging while the UI runs.
	File string `yaml:"file,omitempty"`
}
