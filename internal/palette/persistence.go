package palette

import (
	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/store"
)

// Loader supplies previously persisted state. The bool reports presence.
type Loader interface {
	LoadPalette() ([]Entry, bool)
	LoadFormats() (codec.FormatSet, bool)
}

// Persister receives state after each committed change. Implementations
// must not fail the caller.
type Persister interface {
	SavePalette([]Entry)
	SaveFormats(codec.FormatSet)
}

// Storage is the persistence adapter used by Machine.
type Storage interface {
	Loader
	Persister
}

// StoreAdapter maps palette state onto store keys. Read failures behave as
// missing keys and write failures are logged.
type StoreAdapter struct {
	kv  store.KV
	log *logger.Logger
}

// NewStoreAdapter wraps kv.
func NewStoreAdapter(kv store.KV, log *logger.Logger) *StoreAdapter {
	if log == nil {
		log = logger.Nop()
	}
	return &StoreAdapter{kv: kv, log: log.With("driver", kv.Driver())}
}

func (a *StoreAdapter) LoadPalette() ([]Entry, bool) {
	var entries []Entry
	ok, err := a.kv.Get(store.KeyPalette, &entries)
	if err != nil {
		a.log.Error(err, "failed to read palette, starting fresh")
		return nil, false
	}
	return entries, ok
}

func (a *StoreAdapter) LoadFormats() (codec.FormatSet, bool) {
	var formats codec.FormatSet
	ok, err := a.kv.Get(store.KeyColorFormats, &formats)
	if err != nil {
		a.log.Error(err, "failed to read display formats, using defaults")
		return codec.FormatSet{}, false
	}
	return formats, ok
}

func (a *StoreAdapter) SavePalette(entries []Entry) {
	if err := a.kv.Set(store.KeyPalette, entries); err != nil {
		a.log.Error(err, "failed to persist palette")
	}
}

func (a *StoreAdapter) SaveFormats(formats codec.FormatSet) {
	if err := a.kv.Set(store.KeyColorFormats, formats); err != nil {
		a.log.Error(err, "failed to persist display formats")
	}
}

// Theme returns the stored theme record, writing the default when absent.
func (a *StoreAdapter) Theme() store.ThemeConfig {
	var theme store.ThemeConfig
	ok, err := a.kv.Get(store.KeyConfig, &theme)
	if err != nil {
		a.log.Error(err, "failed to read theme config")
	}
	if ok && err == nil {
		return theme
	}

	theme = store.DefaultTheme()
	if err := a.kv.Set(store.KeyConfig, theme); err != nil {
		a.log.Error(err, "failed to persist theme config")
	}
	return theme
}

// SetTheme stores theme under the config key.
func (a *StoreAdapter) SetTheme(theme store.ThemeConfig) error {
	return a.kv.Set(store.KeyConfig, theme)
}

type nopStorage struct{}

func (nopStorage) LoadPalette() ([]Entry, bool)         { return nil, false }
func (nopStorage) LoadFormats() (codec.FormatSet, bool) { return codec.FormatSet{}, false }
func (nopStorage) SavePalette([]Entry)                  {}
func (nopStorage) SaveFormats(codec.FormatSet)          {}
