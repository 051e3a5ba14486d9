// Package wrapfmt provides the per-column formatters the list printers
// render with. A column is either plain (opaque string conversion) or
// wrapping (carries a calculated character width and reflows its values),
// and callers switch on that tag rather than probing at runtime.
package wrapfmt

import (
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/faultmgr/fmcli/internal/resource"
)

// FormatFunc produces the display string for one field of a resource.
type FormatFunc func(resource.Resource) string

// Formatter is the tagged formatter variant: plain or wrapping.
// The zero value means "no formatter registered".
type Formatter struct {
	plain   FormatFunc
	wrapper *Wrapper
}

// Plain returns a formatter that applies fn with no width handling.
func Plain(fn FormatFunc) Formatter {
	return Formatter{plain: fn}
}

// Wrapping returns a formatter backed by the given column wrapper.
func Wrapping(w *Wrapper) Formatter {
	return Formatter{wrapper: w}
}

// IsZero reports whether no formatter is registered.
func (f Formatter) IsZero() bool {
	return f.plain == nil && f.wrapper == nil
}

// IsWrapper reports whether the formatter is the wrapping variant.
func (f Formatter) IsWrapper() bool {
	return f.wrapper != nil
}

// Wrapper returns the wrapping variant's column wrapper, or nil.
func (f Formatter) Wrapper() *Wrapper {
	return f.wrapper
}

// Format produces the display value for r under the given policy.
func (f Formatter) Format(r resource.Resource, p *Policy) string {
	switch {
	case f.wrapper != nil:
		return f.wrapper.Format(r, p)
	case f.plain != nil:
		return f.plain(r)
	default:
		return ""
	}
}

// Wrapper reflows one column's values to a calculated character width.
type Wrapper struct {
	field   string
	base    FormatFunc
	desired int
	natural int
}

// NewWrapper builds a column wrapper for field. base produces the unwrapped
// value; nil means the raw attribute. desired is the width allocated to the
// column, natural the widest content line observed in the data.
func NewWrapper(field string, base FormatFunc, desired, natural int) *Wrapper {
	return &Wrapper{field: field, base: base, desired: desired, natural: natural}
}

// Unwrapped returns the column value for r with no wrapping applied. Sort
// keys are derived from this.
func (w *Wrapper) Unwrapped(r resource.Resource) string {
	if w.base != nil {
		return w.base(r)
	}
	return resource.AttrOrEmpty(r, w.field)
}

// DesiredWidth returns the calculated desired column width in characters.
func (w *Wrapper) DesiredWidth() int {
	return w.desired
}

// ColumnCharLen clamps width to what the column can actually use: at least
// the minimum wrap width (or the natural width, if narrower) and at most
// the natural width.
func (w *Wrapper) ColumnCharLen(width int) int {
	lower := min(minColumnWidth, w.natural)
	if lower < 1 {
		lower = 1
	}
	upper := max(w.natural, lower)
	return min(max(width, lower), upper)
}

// Format returns the wrapped column value for r, or the unwrapped value
// when the policy suppresses wrapping.
func (w *Wrapper) Format(r resource.Resource, p *Policy) string {
	v := w.Unwrapped(r)
	if p.NoWrap() {
		return v
	}
	return text.WrapSoft(v, w.ColumnCharLen(w.desired))
}
