package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewWidths(t *testing.T) {
	t.Parallel()
	table := NewTable(Tabular, "", "ll")
	_, err := table.PushRow(Row{Cells: []Cell{{Value: "longest"}, {Value: "x"}}})
	assert.NoError(t, err)
	_, err = table.PushRow(Row{Cells: []Cell{{Value: "ab"}, {Value: "xyz"}}})
	assert.NoError(t, err)
	assert.Equal(t, []int{7, 3}, previewWidths(table))
}

func TestPreviewWidthsWideChars(t *testing.T) {
	t.Parallel()
	table := NewTable(Tabular, "", "l")
	_, err := table.PushRow(Row{Cells: []Cell{{Value: "你好"}}})
	assert.NoError(t, err)
	// Two full-width characters occupy four columns.
	assert.Equal(t, []int{4}, previewWidths(table))
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", padCell("ab", 5))
	assert.Equal(t, "abc", padCell("abc", 3))
	assert.Equal(t, "abcd", padCell("abcd", 2))
}

func TestWidthAware(t *testing.T) {
	t.Parallel()
	assert.False(t, Tabular.widthAware())
	assert.True(t, Tabularx.widthAware())
	assert.False(t, LongTable.widthAware())
	assert.True(t, XLTabular.widthAware())
}
