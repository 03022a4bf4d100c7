package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// WriteFile renders one artifact to path, creating its directory.
func WriteFile(path string, kind Kind, swatches []Swatch, formats codec.FormatSet, opts Options) error {
	data, err := Render(kind, swatches, formats, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return swatcherrors.NewExportError(string(kind), fmt.Errorf("create output directory: %w", err))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return swatcherrors.NewExportError(string(kind), err)
	}
	return nil
}

// All writes palette.css, palette.png and palette.pdf into dir concurrently.
// The returned paths follow Kinds order. swatches must not be modified
// until All returns.
func All(ctx context.Context, dir string, swatches []Swatch, formats codec.FormatSet, opts Options) ([]string, error) {
	kinds := Kinds()
	paths := make([]string, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		paths[i] = filepath.Join(dir, kind.FileName())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return WriteFile(paths[i], kind, swatches, formats, opts)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
