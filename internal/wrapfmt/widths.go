package wrapfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/faultmgr/fmcli/internal/resource"
)

const (
	// minColumnWidth is the floor a column can be squeezed to before
	// wrapping stops being useful.
	minColumnWidth = 8

	// columnOverhead is the border and padding cost per rendered column
	// ("| " on the left, " " on the right); borderClose is the final "|".
	columnOverhead = 3
	borderClose    = 1
)

// AsWrappingFormatters derives the formatter set the list printers render
// with. Columns named in noWrapFields, and user formatters that are already
// wrapping, pass through untouched; every other column is promoted to a
// wrapping formatter whose width comes from dividing the terminal width
// across the columns' natural content widths.
func AsWrappingFormatters(
	objs []resource.Resource,
	fields, labels []string,
	formatters map[string]Formatter,
	noWrapFields []string,
	termWidth int,
) map[string]Formatter {
	noWrap := make(map[string]bool, len(noWrapFields))
	for _, f := range noWrapFields {
		noWrap[f] = true
	}

	naturals := lo.Map(fields, func(field string, i int) int {
		base := unwrappedFunc(field, formatters[field])
		w := runewidth.StringWidth(labels[i])
		for _, o := range objs {
			if lw := Width(base(o)); lw > w {
				w = lw
			}
		}
		return w
	})

	wrappable := lo.Map(fields, func(field string, _ int) bool {
		return !noWrap[field] && !formatters[field].IsWrapper()
	})

	desired := allocateWidths(naturals, wrappable, termWidth)

	out := make(map[string]Formatter, len(fields))
	for i, field := range fields {
		f := formatters[field]
		if !wrappable[i] {
			if !f.IsZero() {
				out[field] = f
			}
			continue
		}
		var base FormatFunc
		if !f.IsZero() {
			base = unwrappedFunc(field, f)
		}
		out[field] = Wrapping(NewWrapper(field, base, desired[i], naturals[i]))
	}
	return out
}

// unwrappedFunc returns the producer of a field's unwrapped display value.
func unwrappedFunc(field string, f Formatter) FormatFunc {
	switch {
	case f.IsWrapper():
		return f.Wrapper().Unwrapped
	case !f.IsZero():
		return func(r resource.Resource) string { return f.Format(r, nil) }
	default:
		return func(r resource.Resource) string { return resource.AttrOrEmpty(r, field) }
	}
}

// allocateWidths assigns each column its natural width when everything fits
// the terminal. Otherwise every wrappable column gets its floor (the
// minimum wrap width, or its natural width if narrower) and the remaining
// space is split in proportion to how much each column wants beyond that,
// so the summed widths never overshoot the terminal.
func allocateWidths(naturals []int, wrappable []bool, termWidth int) []int {
	total := borderClose
	for _, n := range naturals {
		total += n + columnOverhead
	}
	if total <= termWidth {
		return naturals
	}

	available := termWidth - columnOverhead*len(naturals) - borderClose
	fixed := 0
	for i, n := range naturals {
		if !wrappable[i] {
			fixed += n
		}
	}
	flex := available - fixed
	if flex <= 0 {
		// Even the unwrappable columns overflow; the render-time width
		// fallback takes over from here.
		return naturals
	}

	floors, slack := 0, 0
	for i, n := range naturals {
		if wrappable[i] {
			floors += min(minColumnWidth, n)
			slack += max(n-minColumnWidth, 0)
		}
	}
	extra := flex - floors

	out := make([]int, len(naturals))
	copy(out, naturals)
	for i, n := range naturals {
		if !wrappable[i] {
			continue
		}
		w := min(minColumnWidth, n)
		if extra > 0 && slack > 0 {
			w += max(n-minColumnWidth, 0) * extra / slack
		}
		out[i] = min(w, n)
	}
	return out
}

// Width returns the display-cell width of the widest line in rendered.
func Width(rendered string) int {
	widest := 0
	for _, line := range strings.Split(rendered, "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
