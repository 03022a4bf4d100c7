package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return swatcherrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[codec.Format]bool, len(cfg.Palette.Formats))
	for i, tag := range cfg.Palette.Formats {
		f, _ := codec.ParseFormat(tag)
		if seen[f] {
			return swatcherrors.NewValidationError(fmt.Sprintf("palette.formats[%d]", i), fmt.Sprintf("duplicate format %q", tag), nil)
		}
		seen[f] = true
	}

	return nil
}

// convertValidationError normalizes validator errors into swatch validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the YAML-keyed namespace,
// e.g. "Config.export.image.width" becomes "export.image.width".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
