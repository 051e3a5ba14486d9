package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/faultmgr/fmcli/internal/wrapfmt"
)

// headerOverhead is the fixed vertical cost of a page besides the header
// labels themselves: two header border lines, the bottom border, and the
// continuation prompt line.
const headerOverhead = 4

// pageTable fronts one table build: word-wrapped header labels, row
// accumulation, and the header's vertical cost. Page turns and the width
// fallback discard it and build a fresh one.
type pageTable struct {
	writer       table.Writer
	headerHeight int
	rows         int
}

func newPageTable(
	fields, labels []string,
	formatters map[string]wrapfmt.Formatter,
	policy *wrapfmt.Policy,
) *pageTable {
	wrapped := lo.Map(fields, func(field string, i int) string {
		return wordwrapHeader(labels[i], formatters[field], policy)
	})

	w := newTableWriter(wrapped)
	return &pageTable{
		writer:       w,
		headerHeight: headerOverhead + RowHeight(wrapped),
	}
}

// newTableWriter builds a writer with the house table style: ASCII
// borders, left alignment, headers rendered verbatim.
func newTableWriter(headers []string) table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleDefault)
	w.Style().Format.Header = text.FormatDefault
	w.SetColumnConfigs(lo.Map(headers, func(_ string, i int) table.ColumnConfig {
		return table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
	}))
	w.AppendHeader(toTableRow(headers))
	return w
}

// wordwrapHeader reflows a column label to the column's character width
// when the column wraps and wrapping is active; otherwise the label passes
// through unchanged.
func wordwrapHeader(label string, f wrapfmt.Formatter, policy *wrapfmt.Policy) string {
	if policy.NoWrap() || !f.IsWrapper() {
		return label
	}
	w := f.Wrapper()
	return text.WrapSoft(label, w.ColumnCharLen(w.DesiredWidth()))
}

func (t *pageTable) addRow(cells []string) {
	t.writer.AppendRow(toTableRow(cells))
	t.rows++
}

// render returns the table text. Tables with no data rows render as empty
// output, matching the printers' "print nothing when empty" contract.
func (t *pageTable) render() string {
	if t.rows == 0 {
		return ""
	}
	return t.writer.Render()
}

func toTableRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
