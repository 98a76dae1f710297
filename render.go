package latex

import (
	"bytes"
	"fmt"
	"io"
)

// WriteTable writes the table as a complete environment block: the
// opening directive with the column types (and, for width-aware kinds,
// the table width), one line per row, and the closing directive. Each
// header row is followed by an \hline rule.
func WriteTable(w io.Writer, t *Table) error {
	env := t.Kind.EnvironmentName()
	var err error
	if t.Kind.widthAware() {
		_, err = fmt.Fprintf(w, "\\begin{%s}{\\%s}{%s}\n", env, t.TableWidth, t.ColumnTypes)
	} else {
		_, err = fmt.Fprintf(w, "\\begin{%s}{%s}\n", env, t.ColumnTypes)
	}
	if err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
		if row.IsHeader {
			if _, err := fmt.Fprintln(w, "\\hline"); err != nil {
				return err
			}
		}
	}
	_, err = fmt.Fprintf(w, "\\end{%s}\n", env)
	return err
}

// MarshalTable renders the table environment block and returns the
// bytes.
func MarshalTable(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
