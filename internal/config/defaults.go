package config

import (
	"time"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Driver: "file"},
		Palette: PaletteConfig{
			Size:    5,
			Formats: []string{string(codec.FormatHEX)},
		},
		Export: ExportConfig{
			Dir: ".",
			Image: ImageConfig{
				Width:      1920,
				Height:     1080,
				Caption:    "palette",
				Background: "#ffffff",
			},
			Document: DocumentConfig{Title: "Palette"},
		},
		Editor: EditorConfig{
			Debounce:    500 * time.Millisecond,
			RemoveDelay: 300 * time.Millisecond,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// FormatSet returns the configured initial display formats.
func (c *Config) FormatSet() codec.FormatSet {
	formats := make([]codec.Format, 0, len(c.Palette.Formats))
	for _, tag := range c.Palette.Formats {
		if f, err := codec.ParseFormat(tag); err == nil {
			formats = append(formats, f)
		}
	}
	return codec.NewFormatSet(formats...)
}
