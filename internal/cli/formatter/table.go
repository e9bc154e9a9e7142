package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableOption adjusts how RenderTable lays out columns.
type TableOption func(*tableLayout)

type tableLayout struct {
	rightAlign map[int]bool
	gap        int
}

// WithRightAlign right-aligns the given zero-based columns, for numbers.
func WithRightAlign(cols ...int) TableOption {
	return func(l *tableLayout) {
		for _, c := range cols {
			l.rightAlign[c] = true
		}
	}
}

// RenderTable renders an aligned table with a dim separator under the
// header. Widths are measured with lipgloss so styled cells line up.
func RenderTable(headers []string, rows [][]string, opts ...TableOption) string {
	if len(headers) == 0 {
		return ""
	}
	layout := tableLayout{rightAlign: map[int]bool{}, gap: 2}
	for _, opt := range opts {
		opt(&layout)
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0))
			rendered := cell
			if style != nil {
				rendered = style(cell)
			}
			if layout.rightAlign[i] {
				b.WriteString(pad + rendered)
			} else {
				b.WriteString(rendered)
				if i < cols-1 {
					b.WriteString(pad)
				}
			}
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", layout.gap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", layout.gap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, nil)
	}

	return b.String()
}
