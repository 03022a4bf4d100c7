package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/export"
)

type exportOptions struct {
	output  string
	dataURL bool
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	kinds := make([]string, 0, len(export.Kinds())+1)
	for _, k := range export.Kinds() {
		kinds = append(kinds, string(k))
	}
	kinds = append(kinds, "all")

	cmd := &cobra.Command{
		Use:       "export <" + strings.Join(kinds, "|") + ">",
		Short:     "Write the palette as CSS, PNG or PDF",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, or directory for 'all' (default export.dir)")
	cmd.Flags().BoolVar(&opts.dataURL, "data-url", false, "Print the PNG as a data URL instead of writing a file")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions, target string) error {
	all := strings.EqualFold(strings.TrimSpace(target), "all")

	var kind export.Kind
	if !all {
		var err error
		kind, err = export.ParseKind(target)
		if err != nil {
			return newCommandError("export palette", fmt.Sprintf("reading artifact %q", target), err, "Use css, png, pdf or all.")
		}
	}
	if opts.dataURL && kind != export.KindPNG {
		return newCommandError("export palette", "encoding data URL", fmt.Errorf("--data-url only applies to png"), "Run 'swatch export png --data-url'.")
	}

	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	// snapshot; the exporters never see later edits
	swatches := export.FromPalette(app.Machine.Colors())
	formats := app.Machine.Formats()
	exportOpts := app.ExportOptions()
	out := cmd.OutOrStdout()

	if opts.dataURL {
		data, err := export.Render(export.KindPNG, swatches, formats, exportOpts)
		if err != nil {
			return newCommandError("export palette", "rendering png", err, "Try again with --verbose for details.")
		}
		fmt.Fprintln(out, export.DataURL(data))
		return nil
	}

	if all {
		dir := opts.output
		if dir == "" {
			dir = app.Config.Export.Dir
		}
		paths, err := export.All(cmd.Context(), dir, swatches, formats, exportOpts)
		if err != nil {
			return newCommandError("export palette", "writing artifacts to "+dir, err, "Check that the directory is writable.")
		}
		for _, p := range paths {
			fmt.Fprintf(out, "Wrote %s\n", p)
		}
		return nil
	}

	path := exportPath(opts.output, app.Config.Export.Dir, kind)
	if err := export.WriteFile(path, kind, swatches, formats, exportOpts); err != nil {
		return newCommandError("export palette", "writing "+path, err, "Check that the destination is writable.")
	}
	app.Logger.WithFields(map[string]any{"kind": string(kind), "path": path}).Debug("artifact written")
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

// exportPath resolves -o: empty means the export directory, an existing
// directory receives the default file name.
func exportPath(output, dir string, kind export.Kind) string {
	if output == "" {
		return filepath.Join(dir, kind.FileName())
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, kind.FileName())
	}
	return output
}
