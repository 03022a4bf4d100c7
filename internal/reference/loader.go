package reference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// tomlDocument is the TOML layout: an array of [[colors]] tables.
type tomlDocument struct {
	Colors []Entry `toml:"colors"`
}

// Load returns the builtin list when path is empty and LoadFile otherwise.
func Load(path string) (*List, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a reference list from a .json, .yaml/.yml or .toml file.
// JSON and YAML files hold a top-level sequence of {name, hex} records.
func LoadFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatcherrors.NewParseError(path, 0, err)
	}

	var entries []Entry
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, swatcherrors.NewParseError(path, jsonLine(data, err), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, swatcherrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		var doc tomlDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			line := 0
			var perr toml.ParseError
			if errors.As(err, &perr) {
				line = perr.Position.Line
			}
			return nil, swatcherrors.NewParseError(path, line, err)
		}
		entries = doc.Colors
	default:
		return nil, swatcherrors.NewParseError(path, 0, fmt.Errorf("unsupported reference list extension %q", ext))
	}

	return NewList(path, entries)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// jsonLine maps a json.SyntaxError offset to a 1-based line number.
func jsonLine(data []byte, err error) int {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return 0
	}
	offset := int(syntaxErr.Offset)
	if offset > len(data) {
		offset = len(data)
	}
	return strings.Count(string(data[:offset]), "\n") + 1
}
