// Package store persists swatch state as JSON values under string keys.
//
// Three drivers are available: a single JSON document on disk ("file"), a
// SQLite key/value table ("sqlite") and a process-local map ("memory").
package store

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Keys used by swatch.
const (
	KeyPalette      = "palette"
	KeyColorFormats = "colorFormats"
	KeyConfig       = "config"
)

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// KV is a JSON value store. Get reports false without error when key is absent.
type KV interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
	Delete(key string) error
	Driver() string
	Path() string
	Close() error
}

// ThemeConfig is the appearance record kept under KeyConfig.
type ThemeConfig struct {
	Color  string `json:"color"`
	Radius string `json:"radius"`
}

// DefaultTheme returns the theme stored when none exists yet.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{Color: "theme-neutral", Radius: "0.5"}
}

// Radii lists the accepted ThemeConfig.Radius values.
func Radii() []string {
	return []string{"0", "0.3", "0.5", "0.75", "1.0"}
}

// Drivers lists the supported driver names.
func Drivers() []string {
	return []string{DriverFile, DriverSQLite, DriverMemory}
}

// DefaultPath returns the state location for driver inside dir.
func DefaultPath(dir, driver string) string {
	switch driver {
	case DriverSQLite:
		return filepath.Join(dir, "state.db")
	case DriverMemory:
		return ""
	default:
		return filepath.Join(dir, "state.json")
	}
}

// Open constructs the store for driver. An empty driver selects the file store.
func Open(driver, path string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverFile:
		return OpenFile(path)
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q (expected one of %s)", driver, strings.Join(Drivers(), ", "))
	}
}
