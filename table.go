package latex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WrongNumberOfColumnsError reports a row whose cell count does not
// match the table's column count. Match it with [errors.As]; further
// error types may be added, so match structurally rather than assuming
// this is the only one.
type WrongNumberOfColumnsError struct {
	Provided int
	Required int
}

func (e *WrongNumberOfColumnsError) Error() string {
	return fmt.Sprintf("wrong number of cells: provided %d cells, require %d columns", e.Provided, e.Required)
}

// Cell holds the content of a single table cell. The value should be a
// single line without embedded newlines; escaping is the caller's
// responsibility.
type Cell struct {
	Value string
}

// String returns the cell value unchanged.
func (c Cell) String() string { return c.Value }

// Row is an ordered sequence of cells plus header flags.
type Row struct {
	Cells         []Cell
	IsHeader      bool
	IsFirstHeader bool
}

// NewRow returns an empty row. The zero value is equivalent.
func NewRow() Row { return Row{} }

// AddCell appends a cell with the given content to the end of the row.
func (r *Row) AddCell(content string) {
	r.Cells = append(r.Cells, Cell{Value: content})
}

// String renders the row as its cell values joined by " & ", followed
// by the " \\" line terminator. A row with no cells renders as the
// terminator alone.
func (r Row) String() string {
	parts := make([]string, len(r.Cells))
	for i, cell := range r.Cells {
		parts[i] = cell.Value
	}
	return strings.Join(parts, " & ") + ` \\`
}

// Table is an append-only collection of rows with a column count fixed
// at construction.
type Table struct {
	Kind TableKind
	Rows []Row

	// TableWidth is used only by width-aware kinds.
	TableWidth string

	// ColumnTypes holds one character per column, e.g. "llXrr".
	ColumnTypes string

	columnCount int
}

// NewTable creates an empty table of the given kind. The column count
// is the number of code points in columnTypes ("llXrr" gives five
// columns) and never changes for the lifetime of the table.
func NewTable(kind TableKind, tableWidth, columnTypes string) *Table {
	return &Table{
		Kind:        kind,
		TableWidth:  tableWidth,
		ColumnTypes: columnTypes,
		columnCount: utf8.RuneCountInString(columnTypes),
	}
}

// ColumnCount returns the number of columns fixed at construction.
func (t *Table) ColumnCount() int { return t.columnCount }

// PushRow appends row to the table. The row must carry exactly
// [Table.ColumnCount] cells; otherwise a [WrongNumberOfColumnsError]
// is returned and the table is left unchanged. On success the table is
// returned so appends can be chained.
func (t *Table) PushRow(row Row) (*Table, error) {
	if len(row.Cells) != t.columnCount {
		return nil, &WrongNumberOfColumnsError{
			Provided: len(row.Cells),
			Required: t.columnCount,
		}
	}
	t.Rows = append(t.Rows, row)
	return t, nil
}

// PrepareDocument registers the table's package requirements on the
// document preamble. Every kind registers the tabularx package.
func (t *Table) PrepareDocument(doc *Document) {
	doc.Preamble.UsePackage("tabularx")
}
