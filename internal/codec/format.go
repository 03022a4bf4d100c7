package codec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format is a display format tag.
type Format string

// Supported formats, in declaration order. Rendering always follows this order.
const (
	FormatHEX  Format = "HEX"
	FormatRGB  Format = "RGB"
	FormatRGBA Format = "RGBA"
	FormatHSL  Format = "HSL"
	FormatHSB  Format = "HSB"
	FormatCMYK Format = "CMYK"
)

var declared = []Format{FormatHEX, FormatRGB, FormatRGBA, FormatHSL, FormatHSB, FormatCMYK}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	return append([]Format(nil), declared...)
}

// ParseFormat resolves a tag case-insensitively.
func ParseFormat(s string) (Format, error) {
	candidate := Format(strings.ToUpper(strings.TrimSpace(s)))
	for _, f := range declared {
		if f == candidate {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown color format %q (want one of %s)", s, strings.Join(FormatNames(), ", "))
}

// FormatNames returns the tags as plain strings in declaration order.
func FormatNames() []string {
	names := make([]string, len(declared))
	for i, f := range declared {
		names[i] = string(f)
	}
	return names
}

// Lower is the tag used in CSS custom property names.
func (f Format) Lower() string {
	return strings.ToLower(string(f))
}

// Render formats hex in the given display format.
func Render(hex string, f Format) string {
	switch f {
	case FormatHEX:
		return hex
	case FormatRGB:
		return RGBString(hex)
	case FormatRGBA:
		return HexToRGBA(hex, 1)
	case FormatHSL:
		return HexToHSL(hex)
	case FormatHSB:
		return HexToHSB(hex)
	case FormatCMYK:
		return HexToCMYK(hex)
	default:
		return ""
	}
}

// RenderAll renders hex in every format of the set, in declaration order.
func RenderAll(hex string, set FormatSet) []string {
	list := set.List()
	out := make([]string, len(list))
	for i, f := range list {
		out[i] = Render(hex, f)
	}
	return out
}

// FormatSet is an unordered set of display formats.
type FormatSet struct {
	enabled map[Format]bool
}

// NewFormatSet builds a set from the given formats. Unknown tags are ignored.
func NewFormatSet(formats ...Format) FormatSet {
	s := FormatSet{enabled: make(map[Format]bool, len(formats))}
	for _, f := range formats {
		if _, err := ParseFormat(string(f)); err == nil {
			s.enabled[Format(strings.ToUpper(string(f)))] = true
		}
	}
	return s
}

// DefaultFormatSet contains only HEX.
func DefaultFormatSet() FormatSet {
	return NewFormatSet(FormatHEX)
}

// Has reports whether f is enabled.
func (s FormatSet) Has(f Format) bool {
	return s.enabled[f]
}

// Len is the number of enabled formats.
func (s FormatSet) Len() int {
	return len(s.enabled)
}

// Toggle returns a copy of the set with f flipped.
func (s FormatSet) Toggle(f Format) FormatSet {
	next := NewFormatSet(s.List()...)
	if next.enabled[f] {
		delete(next.enabled, f)
	} else if _, err := ParseFormat(string(f)); err == nil {
		next.enabled[f] = true
	}
	return next
}

// List returns the enabled formats in declaration order.
func (s FormatSet) List() []Format {
	out := make([]Format, 0, len(s.enabled))
	for _, f := range declared {
		if s.enabled[f] {
			out = append(out, f)
		}
	}
	return out
}

// Strings returns the enabled tags in declaration order.
func (s FormatSet) Strings() []string {
	list := s.List()
	out := make([]string, len(list))
	for i, f := range list {
		out[i] = string(f)
	}
	return out
}

// MarshalJSON encodes the set as an array of tags.
func (s FormatSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes an array of tags, dropping unknown ones.
func (s *FormatSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	formats := make([]Format, 0, len(tags))
	for _, tag := range tags {
		if f, err := ParseFormat(tag); err == nil {
			formats = append(formats, f)
		}
	}
	*s = NewFormatSet(formats...)
	return nil
}
