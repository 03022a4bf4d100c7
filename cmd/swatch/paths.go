package main

import (
	"os"
	"path/filepath"
)

func swatchDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".swatch"), nil
}

func defaultConfigPath() (string, error) {
	dir, err := swatchDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yaml"), nil
}
