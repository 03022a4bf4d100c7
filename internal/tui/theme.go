package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/store"
)

// accents maps the stored theme color to an ANSI 256 accent.
var accents = map[string]lipgloss.Color{
	"theme-zinc":    lipgloss.Color("244"),
	"theme-slate":   lipgloss.Color("67"),
	"theme-stone":   lipgloss.Color("138"),
	"theme-gray":    lipgloss.Color("250"),
	"theme-neutral": lipgloss.Color("212"),
	"theme-blue":    lipgloss.Color("39"),
	"theme-green":   lipgloss.Color("42"),
	"theme-orange":  lipgloss.Color("208"),
	"theme-red":     lipgloss.Color("196"),
	"theme-rose":    lipgloss.Color("204"),
	"theme-violet":  lipgloss.Color("99"),
	"theme-yellow":  lipgloss.Color("226"),
}

// Theme is the persisted appearance config resolved to terminal styles.
type Theme struct {
	Name    string
	Accent  lipgloss.Color
	Rounded bool
}

// ThemeNames lists the accepted theme colors.
func ThemeNames() []string {
	names := make([]string, 0, len(accents))
	for name := range accents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeFrom resolves cfg. Unknown colors fall back to neutral; a radius of
// zero selects square borders.
func ThemeFrom(cfg store.ThemeConfig) Theme {
	name := strings.ToLower(strings.TrimSpace(cfg.Color))
	accent, ok := accents[name]
	if !ok {
		name = store.DefaultTheme().Color
		accent = accents[name]
	}

	rounded := true
	if r, err := strconv.ParseFloat(strings.TrimSpace(cfg.Radius), 64); err == nil && r <= 0 {
		rounded = false
	}

	return Theme{Name: name, Accent: accent, Rounded: rounded}
}

func (t Theme) border() lipgloss.Border {
	if t.Rounded {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.ThickBorder()
}

func (t Theme) selectedSwatch() lipgloss.Style {
	return swatchStyle.
		BorderStyle(t.border()).
		BorderForeground(t.Accent)
}

func (t Theme) formatOn() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
}

func (t Theme) editor() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(t.border()).
		BorderForeground(t.Accent).
		Padding(0, 1).
		MarginTop(1)
}
