package latex

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Preview writes the table as an aligned plain-text grid, with a
// dashed separator after each header row. It is meant for inspecting a
// table while assembling it and is not part of the markup contract.
func Preview(w io.Writer, t *Table) error {
	widths := previewWidths(t)
	for _, row := range t.Rows {
		parts := make([]string, len(widths))
		for i, width := range widths {
			cell := ""
			if i < len(row.Cells) {
				cell = row.Cells[i].Value
			}
			parts[i] = padCell(cell, width)
		}
		line := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if row.IsHeader {
			if err := previewSep(w, widths); err != nil {
				return err
			}
		}
	}
	return nil
}

func previewWidths(t *Table) []int {
	widths := make([]int, t.columnCount)
	for _, row := range t.Rows {
		for i, cell := range row.Cells {
			if w := runewidth.StringWidth(cell.Value); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func previewSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
