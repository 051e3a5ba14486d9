package wrapfmt

// Policy carries the no-wrap override threaded through the renderer and
// pager. It replaces a process-global flag: the pager forces no-wrap for
// the duration of a width fallback and restores the prior setting.
type Policy struct {
	noWrap bool
}

// NewPolicy returns a policy with the given initial no-wrap setting.
func NewPolicy(noWrap bool) *Policy {
	return &Policy{noWrap: noWrap}
}

// NoWrap reports whether wrapping is suppressed. Safe on a nil policy.
func (p *Policy) NoWrap() bool {
	return p != nil && p.noWrap
}

// ForceNoWrap suppresses wrapping and returns a restore function that
// reinstates the previous setting.
func (p *Policy) ForceNoWrap() func() {
	prev := p.noWrap
	p.noWrap = true
	return func() { p.noWrap = prev }
}
