package render

import (
	"io"
	"sort"

	"github.com/rs/zerolog"

	"github.com/faultmgr/fmcli/internal/resource"
	"github.com/faultmgr/fmcli/internal/term"
	"github.com/faultmgr/fmcli/internal/wrapfmt"
)

// Options configures the list printers. The zero value prints an unsorted,
// wrapped, paged table to stdout.
type Options struct {
	// Formatters maps field names to user-supplied formatters. Fields
	// without one render their raw (normalized) attribute value.
	Formatters map[string]wrapfmt.Formatter

	// SortKey is the index of the sort field within fields; nil skips
	// sorting entirely. Use SortBy for literals.
	SortKey *int

	// Reverse sorts descending.
	Reverse bool

	// NoWrapFields lists fields that must never be word-wrapped.
	NoWrapFields []string

	// NoPaging emits the whole list as one table with no prompts.
	NoPaging bool

	// NoWrap suppresses word wrapping globally (the --nowrap flag).
	NoWrap bool

	// Printer is the output sink; defaults to a line printed to stdout.
	Printer func(string)

	PromptIn  io.Reader
	PromptOut io.Writer

	// TermSize overrides terminal geometry detection, mainly for tests.
	TermSize func() (int, int)

	Logger *zerolog.Logger
}

// SortBy returns a sort key pointer for Options.SortKey.
func SortBy(i int) *int {
	return &i
}

// PrintLongList renders objs as a paged table: it derives wrapping
// formatters for the columns, stably sorts by the designated sort field,
// feeds each object through a Pager, and finalizes the output.
func PrintLongList(objs []resource.Resource, fields, labels []string, opts Options) {
	width, height := term.Size()
	if opts.TermSize != nil {
		width, height = opts.TermSize()
	}

	policy := wrapfmt.NewPolicy(opts.NoWrap)
	formatters := wrapfmt.AsWrappingFormatters(
		objs, fields, labels, opts.Formatters, opts.NoWrapFields, width)

	objs = sortForList(objs, fields, formatters, opts.SortKey, opts.Reverse)

	pager := NewPager(PagerConfig{
		Fields:     fields,
		Labels:     labels,
		Formatters: formatters,
		Policy:     policy,
		Paging:     !opts.NoPaging,
		Printer:    opts.Printer,
		PromptIn:   opts.PromptIn,
		PromptOut:  opts.PromptOut,
		TermWidth:  width,
		TermHeight: height,
		Logger:     opts.Logger,
	})
	for _, o := range objs {
		if !pager.AddRow(o) {
			break
		}
	}
	pager.Done()
}

// PrintList is PrintLongList with paging forced off.
func PrintList(objs []resource.Resource, fields, labels []string, opts Options) {
	opts.NoPaging = true
	PrintLongList(objs, fields, labels, opts)
}

// sortForList stably sorts a copy of objs by the sort field's key: the
// unwrapped value for wrapping formatters, the formatted value for plain
// ones, else the raw attribute (absent attributes sort as empty strings).
func sortForList(
	objs []resource.Resource,
	fields []string,
	formatters map[string]wrapfmt.Formatter,
	sortKey *int,
	reverse bool,
) []resource.Resource {
	if sortKey == nil || *sortKey < 0 || *sortKey >= len(fields) {
		return objs
	}
	key := sortKeyFunc(fields[*sortKey], formatters[fields[*sortKey]])

	sorted := make([]resource.Resource, len(objs))
	copy(sorted, objs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if reverse {
			i, j = j, i
		}
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted
}

func sortKeyFunc(field string, f wrapfmt.Formatter) func(resource.Resource) string {
	switch {
	case f.IsWrapper():
		return f.Wrapper().Unwrapped
	case !f.IsZero():
		return func(r resource.Resource) string { return f.Format(r, nil) }
	default:
		return func(r resource.Resource) string { return resource.AttrOrEmpty(r, field) }
	}
}
