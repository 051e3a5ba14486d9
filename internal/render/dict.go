package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/faultmgr/fmcli/internal/resource"
)

// PrintDict renders a two-column Property/Value table of d with keys in
// sorted order. Values are timestamp-normalized; wrap > 0 reflows them to
// that width. Multi-line values continue on extra rows with a blank
// property cell, so stack traces stay readable.
func PrintDict(d map[string]string, wrap int, printer func(string)) {
	if printer == nil {
		printer = func(s string) { fmt.Println(s) }
	}
	if len(d) == 0 {
		printer("")
		return
	}

	w := newTableWriter([]string{"Property", "Value"})
	keys := lo.Keys(d)
	sort.Strings(keys)
	for _, k := range keys {
		v := resource.NormalizeTimestamps(d[k])
		if wrap > 0 {
			v = text.WrapSoft(v, wrap)
		}
		prop := k
		for _, line := range strings.Split(v, "\n") {
			w.AppendRow(table.Row{prop, line})
			prop = ""
		}
	}
	printer(w.Render())
}
