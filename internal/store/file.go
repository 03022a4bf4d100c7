package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

const fileVersion = "1"

// fileDocument is the on-disk layout of the file store.
type fileDocument struct {
	Version string                     `json:"version"`
	Values  map[string]json.RawMessage `json:"values"`
}

// File persists every key in one JSON document, rewritten atomically on
// each change.
type File struct {
	path   string
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// OpenFile loads the document at path, creating its directory. A missing
// document starts empty.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, swatcherrors.NewStorageError(DriverFile, "open", "", fmt.Errorf("path is required"))
	}

	f := &File{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, swatcherrors.NewStorageError(DriverFile, "open", "", fmt.Errorf("failed to create state directory: %w", err))
	}

	if err := f.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, swatcherrors.NewStorageError(DriverFile, "load", "", err)
		}
	}

	return f, nil
}

func (f *File) load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}

	f.values = doc.Values
	if f.values == nil {
		f.values = make(map[string]json.RawMessage)
	}
	return nil
}

// save must be called with f.mu held.
func (f *File) save() error {
	data, err := json.MarshalIndent(fileDocument{Version: fileVersion, Values: f.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Reload re-reads the document from disk, picking up writes made by other
// processes.
func (f *File) Reload() error {
	if err := f.load(); err != nil && !os.IsNotExist(err) {
		return swatcherrors.NewStorageError(DriverFile, "load", "", err)
	}
	return nil
}

func (f *File) Get(key string, dest any) (bool, error) {
	f.mu.RLock()
	raw, ok := f.values[key]
	f.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return true, swatcherrors.NewStorageError(DriverFile, "decode", key, err)
	}
	return true, nil
}

func (f *File) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return swatcherrors.NewStorageError(DriverFile, "encode", key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = raw
	if err := f.save(); err != nil {
		return swatcherrors.NewStorageError(DriverFile, "write", key, err)
	}
	return nil
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	if err := f.save(); err != nil {
		return swatcherrors.NewStorageError(DriverFile, "write", key, err)
	}
	return nil
}

func (f *File) Driver() string { return DriverFile }
func (f *File) Path() string   { return f.path }
func (f *File) Close() error   { return nil }
