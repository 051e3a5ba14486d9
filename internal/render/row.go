package render

import (
	"github.com/samber/lo"

	"github.com/faultmgr/fmcli/internal/resource"
	"github.com/faultmgr/fmcli/internal/wrapfmt"
)

// BuildRow maps one resource to its ordered display values, one per field.
// Attribute values are timestamp-normalized first; formatters see the
// normalized values through an overlay view, so the caller's object is
// never mutated. Missing attributes resolve to empty strings.
func BuildRow(
	fields []string,
	formatters map[string]wrapfmt.Formatter,
	obj resource.Resource,
	policy *wrapfmt.Policy,
) []string {
	view := resource.NewOverlay(obj)
	return lo.Map(fields, func(field string, _ int) string {
		norm := resource.NormalizeTimestamps(resource.AttrOrEmpty(obj, field))
		view.Set(field, norm)
		if f, ok := formatters[field]; ok && !f.IsZero() {
			return f.Format(view, policy)
		}
		return norm
	})
}
