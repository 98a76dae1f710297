package latex

import (
	"errors"
	"fmt"
)

// ErrUnknownTableKind is returned by [ParseTableKind] for strings that
// name no table kind.
var ErrUnknownTableKind = errors.New("unknown table kind")

// TableKind selects the LaTeX environment a table renders into.
type TableKind int

const (
	// Tabular is a standard fixed-layout table.
	Tabular TableKind = iota
	// Tabularx is a width-aware table with X-type stretch columns.
	Tabularx
	// LongTable is a table that breaks across pages.
	LongTable
	// XLTabular combines page breaking with width-aware columns.
	XLTabular
)

var tableKinds = []TableKind{Tabular, Tabularx, LongTable, XLTabular}

// TableKinds returns all table kinds.
func TableKinds() []TableKind {
	out := make([]TableKind, len(tableKinds))
	copy(out, tableKinds)
	return out
}

// EnvironmentName returns the LaTeX environment name for the kind.
func (k TableKind) EnvironmentName() string {
	switch k {
	case Tabularx:
		return "tabularx"
	case LongTable:
		return "longtable"
	case XLTabular:
		return "xltabular"
	default:
		return "tabular"
	}
}

// String returns the environment name.
func (k TableKind) String() string { return k.EnvironmentName() }

// widthAware reports whether the environment's opening directive takes
// a width argument.
func (k TableKind) widthAware() bool {
	return k == Tabularx || k == XLTabular
}

// ParseTableKind parses an environment name into a [TableKind].
func ParseTableKind(s string) (TableKind, error) {
	for _, k := range tableKinds {
		if k.EnvironmentName() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTableKind, s)
}
