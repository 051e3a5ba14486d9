// Package resource defines the attribute-bag abstraction for API objects
// displayed by the CLI, plus timestamp normalization applied to attribute
// values before rendering.
package resource

// Resource is a displayable API object: a bag of named string attributes.
// Implementations report whether an attribute exists; missing attributes
// render as empty strings rather than erroring.
type Resource interface {
	Attr(name string) (string, bool)
}

// MapResource is the map-backed Resource used by the render command and tests.
type MapResource map[string]string

// Attr returns the named attribute and whether it is present.
func (m MapResource) Attr(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// AttrOrEmpty returns the named attribute, or "" when absent.
func AttrOrEmpty(r Resource, name string) string {
	v, _ := r.Attr(name)
	return v
}

// Overlay is a Resource view with locally overridden attribute values.
// The row builder installs normalized values here so formatters observe
// them without the underlying object being mutated.
type Overlay struct {
	base Resource
	vals map[string]string
}

// NewOverlay returns an Overlay over base with no overrides.
func NewOverlay(base Resource) *Overlay {
	return &Overlay{base: base, vals: make(map[string]string)}
}

// Set overrides the named attribute for this view.
func (o *Overlay) Set(name, value string) {
	o.vals[name] = value
}

// Attr returns the overridden value when present, else the base attribute.
func (o *Overlay) Attr(name string) (string, bool) {
	if v, ok := o.vals[name]; ok {
		return v, true
	}
	return o.base.Attr(name)
}
