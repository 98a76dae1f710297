// Package latex models tabular structures for programmatic generation
// of LaTeX tables.
//
// A [Table] is built bottom-up: a [Row] collects [Cell] values, and
// rows are pushed into a table that validates their shape against the
// column layout fixed at construction:
//
//	table := latex.NewTable(latex.Tabularx, "textwidth", "llXrr")
//	row := latex.NewRow()
//	row.AddCell("name")
//	row.AddCell("role")
//	row.AddCell("notes")
//	row.AddCell("age")
//	row.AddCell("score")
//	if _, err := table.PushRow(row); err != nil {
//		// row had the wrong number of cells
//	}
//
// # Rendering
//
// A [Row] renders as its cell values joined by " & " with a trailing
// " \\" terminator; a [Cell] renders as its raw value with no
// escaping. [WriteTable] and [MarshalTable] wrap the rows in the
// environment block named by the table's [TableKind], substituting the
// table width and column types into the opening directive. [Preview]
// renders an aligned plain-text grid for terminal inspection.
//
// # Table Kinds
//
// The four kinds map to LaTeX environments:
//
//   - [Tabular] → "tabular"
//   - [Tabularx] → "tabularx"
//   - [LongTable] → "longtable"
//   - [XLTabular] → "xltabular"
//
// [Tabularx] and [XLTabular] take a width argument in their opening
// directive. Use [ParseTableKind] to convert a CLI flag string into a
// kind, and [TableKinds] to enumerate the closed set.
//
// # Documents
//
// Tables register the packages their markup needs on a [Document]
// preamble via [Table.PrepareDocument]. Registration is unconditional:
// every kind registers the tabularx package.
//
// # Errors
//
// Row insertion is the only fallible operation. A shape mismatch is
// reported as a [WrongNumberOfColumnsError] carrying both the provided
// and the required cell counts; match it with [errors.As].
// [ParseTableKind] wraps [ErrUnknownTableKind].
package latex
