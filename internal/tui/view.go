package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

// View renders the current model state
func (m Model) View() string {
	if m.viewMode == ViewHelp {
		return m.renderHelpView()
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Render(m.errorMsg))
		content.WriteString("\n")
	}

	content.WriteString(m.renderSwatches())
	content.WriteString("\n")

	if m.viewMode == ViewEdit {
		content.WriteString(m.renderEditor())
		content.WriteString("\n")
	}

	if m.notice != "" {
		content.WriteString(noticeStyle.Render(m.notice))
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter())
	return content.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("swatch")

	toggles := make([]string, 0, len(codec.Formats()))
	for i, f := range codec.Formats() {
		label := fmt.Sprintf("%d:%s", i+1, f)
		if m.machine.Formats().Has(f) {
			toggles = append(toggles, m.theme.formatOn().Render(label))
		} else {
			toggles = append(toggles, formatOffStyle.Render(label))
		}
	}

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(toggles, " ")))
}

func (m Model) renderSwatches() string {
	colors := m.machine.Colors()
	perRow := max(1, m.width/(swatchWidth+2))

	var rows []string
	for start := 0; start < len(colors); start += perRow {
		end := min(start+perRow, len(colors))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderSwatch(i, colors[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderSwatch(index int, e palette.Entry) string {
	lines := []string{m.pinGlyph(e.Pinned) + " " + truncate(e.Name, swatchWidth-4)}
	lines = append(lines, codec.RenderAll(e.Hex, m.machine.Formats())...)
	body := strings.Join(lines, "\n")

	if m.removing && index == m.removeIndex {
		return removingStyle.Render(body)
	}

	base := swatchStyle
	if index == m.cursor {
		base = m.theme.selectedSwatch()
	}
	return swatchColors(base, e.Hex, codec.TextColor(e.Hex)).Render(body)
}

func (m Model) pinGlyph(pinned bool) string {
	switch {
	case pinned && m.useUnicode:
		return "●"
	case pinned:
		return "*"
	case m.useUnicode:
		return "○"
	default:
		return "-"
	}
}

func (m Model) renderEditor() string {
	e, _ := m.machine.At(m.editIndex)
	label := fmt.Sprintf("Editing color %d (%s)", m.editIndex+1, e.Name)
	hint := formatOffStyle.Render("enter: apply  •  esc: close")
	return m.theme.editor().Render(lipgloss.JoinVertical(lipgloss.Left, label, m.input.View(), hint))
}

func (m Model) renderFooter() string {
	hints := []string{
		"←/→: move",
		"n: regenerate",
		"space: pin",
		"e: edit",
		"x: remove",
		"?: help",
		"q: quit",
	}
	if !m.useUnicode {
		hints[0] = "h/l: move"
	}
	return footerStyle.Render(strings.Join(hints, "  •  "))
}

func (m Model) renderHelpView() string {
	bindings := [][2]string{
		{"n, N", "Regenerate every unpinned color"},
		{"←/→, h/l, tab", "Move between colors"},
		{"space, p", "Pin or unpin the selected color"},
		{"r", "Regenerate the selected color"},
		{"x, delete", "Remove the selected color"},
		{"e, enter", "Edit the selected hex value"},
		{"1-6", "Toggle HEX, RGB, RGBA, HSL, HSB, CMYK"},
		{"c / i / f", "Export CSS / PNG / PDF"},
		{"esc", "Dismiss messages"},
		{"q, ctrl+c", "Quit"},
	}

	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, helpKeyStyle.Render(b[0])+helpDescStyle.Render(b[1]))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("swatch help"),
		"",
		strings.Join(lines, "\n"),
		footerStyle.Render("Press ? or Esc to close"),
	)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
