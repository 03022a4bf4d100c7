package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/export"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/namer"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
	"github.com/alexisbeaulieu97/swatch/internal/reference"
	"github.com/alexisbeaulieu97/swatch/internal/store"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Store   store.KV
	Adapter *palette.StoreAdapter
	Namer   *namer.Namer
	Machine *palette.Machine

	logFile *os.File
}

type appOptions struct {
	// interactive routes logs away from the terminal the UI draws on.
	interactive bool
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, opts appOptions) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	app := &AppContext{Config: cfg}

	log, err := app.newLogger(cmd.ErrOrStderr(), flags.verbose, opts.interactive)
	if err != nil {
		return nil, newCommandError("start swatch", "creating logger", err, "Check log.level and log.file in your configuration.")
	}
	app.Logger = log

	list, err := reference.Load(cfg.Reference.File)
	if err != nil {
		app.Close()
		return nil, newCommandError("start swatch", "loading reference colors", err, "Fix or remove reference.file in your configuration.")
	}
	app.Namer = namer.New(list)
	log.WithFields(map[string]any{"source": list.Source(), "colors": list.Len()}).Debug("reference list loaded")

	kv, err := app.openStore(flags.storeDriver)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Store = kv
	app.Adapter = palette.NewStoreAdapter(kv, log)
	app.Machine = app.newMachine()

	return app, nil
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return nil, newCommandError("load configuration", "determining config path", err, "Ensure your HOME directory is set correctly.")
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, newCommandError("load configuration", path, err, "Fix the reported field or remove the file to use defaults.")
	}
	return cfg, nil
}

func (a *AppContext) newLogger(stderr io.Writer, verbose, interactive bool) (*logger.Logger, error) {
	level := a.Config.Log.Level
	if verbose {
		level = "debug"
	}

	if !interactive {
		return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: stderr})
	}

	if a.Config.Log.File == "" {
		return logger.Nop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(a.Config.Log.File), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(a.Config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	a.logFile = file
	return logger.New(logger.Options{Level: level, Writer: file})
}

// openStore opens the configured store. A store that cannot be opened is
// replaced by an in-memory one so the session still works.
func (a *AppContext) openStore(override string) (store.KV, error) {
	driver := a.Config.Storage.Driver
	if override != "" {
		driver = strings.ToLower(strings.TrimSpace(override))
	}
	if !slices.Contains(store.Drivers(), driver) {
		return nil, newCommandError("open store", fmt.Sprintf("selecting driver %q", driver),
			fmt.Errorf("unknown store driver"), "Use one of: "+strings.Join(store.Drivers(), ", ")+".")
	}

	path := a.Config.Storage.Path
	if path == "" && driver != store.DriverMemory {
		dir, err := swatchDir()
		if err != nil {
			return nil, newCommandError("open store", "determining state directory", err, "Ensure your HOME directory is set correctly.")
		}
		path = store.DefaultPath(dir, driver)
	}

	kv, err := store.Open(driver, path)
	if err != nil {
		a.Logger.WithFields(map[string]any{"driver": driver, "path": path}).Error(err, "store unavailable, keeping state in memory")
		return store.NewMemory(), nil
	}

	a.Logger.WithFields(map[string]any{"driver": driver, "path": path}).Debug("store opened")
	return kv, nil
}

func (a *AppContext) newMachine() *palette.Machine {
	return palette.New(a.Namer, a.Adapter,
		palette.WithSize(a.Config.Palette.Size),
		palette.WithDefaultFormats(a.Config.FormatSet()),
		palette.WithLogger(a.Logger),
	)
}

// Reload re-reads persisted state, picking up writes from other processes.
func (a *AppContext) Reload() error {
	if f, ok := a.Store.(*store.File); ok {
		if err := f.Reload(); err != nil {
			return err
		}
	}
	a.Machine = a.newMachine()
	return nil
}

// ExportOptions maps the export section of the configuration.
func (a *AppContext) ExportOptions() export.Options {
	img := a.Config.Export.Image
	return export.Options{
		Image: export.ImageOptions{
			Width:      img.Width,
			Height:     img.Height,
			Caption:    img.Caption,
			Background: img.Background,
		},
		Document: export.DocumentOptions{Title: a.Config.Export.Document.Title},
	}
}

// Close releases the store and log file.
func (a *AppContext) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Error(err, "closing store")
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}
