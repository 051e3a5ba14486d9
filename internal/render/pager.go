package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/faultmgr/fmcli/internal/resource"
	"github.com/faultmgr/fmcli/internal/term"
	"github.com/faultmgr/fmcli/internal/wrapfmt"
)

// quitSentinel is the prompt reply that stops pagination.
const quitSentinel = "q"

const promptText = "Press Enter to continue or 'q' to exit..."

var promptStyle = lipgloss.NewStyle().Bold(true) //nolint:gochecknoglobals // render style, immutable

// PagerConfig wires a Pager. Zero values fall back to stdout/stdin, the
// detected terminal size, and a disabled logger, so tests can inject all
// of them.
type PagerConfig struct {
	Fields     []string
	Labels     []string
	Formatters map[string]wrapfmt.Formatter

	// Policy carries the no-wrap override; the pager saves and restores it
	// around the width fallback.
	Policy *wrapfmt.Policy

	// Paging enables page breaks with continuation prompts. When false,
	// every row lands in a single table emitted once by Done.
	Paging bool

	// Printer is the output sink, invoked once per emitted chunk.
	Printer func(string)

	PromptIn  io.Reader
	PromptOut io.Writer

	TermWidth  int
	TermHeight int

	Logger *zerolog.Logger
}

// Pager accumulates table rows, emits one terminal page at a time, and
// prompts the user between pages. See the package documentation for the
// width-fallback behavior applied on every flush.
type Pager struct {
	fields     []string
	labels     []string
	formatters map[string]wrapfmt.Formatter
	policy     *wrapfmt.Policy
	paging     bool

	printer   func(string)
	promptIn  *bufio.Reader
	promptOut io.Writer

	termWidth  int
	termHeight int

	tbl       *pageTable
	objs      []resource.Resource
	linesLeft int
	pageRows  int
	quit      bool

	logger zerolog.Logger
}

// NewPager builds a pager from cfg, applying defaults for unset IO and
// terminal geometry.
func NewPager(cfg PagerConfig) *Pager {
	if cfg.Printer == nil {
		cfg.Printer = func(s string) { fmt.Println(s) }
	}
	if cfg.PromptIn == nil {
		cfg.PromptIn = os.Stdin
	}
	if cfg.PromptOut == nil {
		cfg.PromptOut = os.Stdout
	}
	if cfg.TermWidth <= 0 || cfg.TermHeight <= 0 {
		cfg.TermWidth, cfg.TermHeight = term.Size()
	}
	if cfg.Policy == nil {
		cfg.Policy = wrapfmt.NewPolicy(false)
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Pager{
		fields:     cfg.Fields,
		labels:     cfg.Labels,
		formatters: cfg.Formatters,
		policy:     cfg.Policy,
		paging:     cfg.Paging,
		printer:    cfg.Printer,
		promptIn:   bufio.NewReader(cfg.PromptIn),
		promptOut:  cfg.PromptOut,
		termWidth:  cfg.TermWidth,
		termHeight: cfg.TermHeight,
		logger:     logger,
	}
}

// AddRow renders obj into a table row and accounts for its height against
// the current page. It returns false once the user has quit; callers
// should stop feeding rows at that point.
//
// The first row after a page reset is always accepted, however tall, so a
// single oversized row can never deadlock the pager.
func (p *Pager) AddRow(obj resource.Resource) bool {
	if p.quit {
		return false
	}
	if p.tbl == nil {
		p.rebuild()
	}

	row := BuildRow(p.fields, p.formatters, obj, p.policy)
	if !p.paging {
		p.append(row, obj)
		return true
	}

	h := RowHeight(row)
	if p.linesLeft-h >= 0 || p.pageRows == 0 {
		p.append(row, obj)
		p.linesLeft -= h
		p.pageRows++
		return true
	}

	// Page full: emit it, pad to the bottom of the screen, and ask.
	pad := p.linesLeft
	p.printer(p.flush())
	if pad > 0 {
		p.printer(strings.Repeat("\n", pad-1))
	}
	p.logger.Debug().Int("page_rows", p.pageRows).Msg("page full, prompting")
	if !p.promptContinue() {
		p.quit = true
		return false
	}

	p.rebuild()
	p.append(row, obj)
	p.linesLeft -= h
	p.pageRows++
	return true
}

// Done emits the final table. After a quit it does nothing; with paging
// enabled it only emits when the current page holds rows that have not
// been flushed yet.
func (p *Pager) Done() {
	if p.quit {
		return
	}
	if !p.paging || p.pageRows > 0 {
		p.printer(p.flush())
	}
}

func (p *Pager) append(row []string, obj resource.Resource) {
	p.tbl.addRow(row)
	p.objs = append(p.objs, obj)
}

// rebuild starts a fresh table: header labels re-wrapped under the current
// policy, header height recomputed, page budget reset.
func (p *Pager) rebuild() {
	p.tbl = newPageTable(p.fields, p.labels, p.formatters, p.policy)
	p.linesLeft = p.termHeight - p.tbl.headerHeight
	p.pageRows = 0
}

// flush renders the accumulated rows and clears them. If the wrapped
// rendering is wider than the terminal, it rebuilds once with wrapping
// forced off, replays the accumulated objects, and restores the policy.
// The fallback runs at most once per flush.
func (p *Pager) flush() string {
	if p.tbl == nil {
		p.rebuild()
	}
	objs := p.objs
	p.objs = nil

	out := p.tbl.render()
	if out == "" || p.policy.NoWrap() {
		return out
	}
	width := wrapfmt.Width(out)
	if width <= p.termWidth {
		return out
	}

	p.logger.Debug().
		Int("width", width).
		Int("terminal", p.termWidth).
		Msg("wrapped table exceeds terminal width, rendering unwrapped")

	restore := p.policy.ForceNoWrap()
	defer restore()
	p.rebuild()
	for _, o := range objs {
		p.tbl.addRow(BuildRow(p.fields, p.formatters, o, p.policy))
	}
	return p.tbl.render()
}

// promptContinue asks the user whether to keep going. Any reply other than
// the quit sentinel continues; a failed read (for example EOF on a closed
// stdin) stops rather than prompting forever.
func (p *Pager) promptContinue() bool {
	fmt.Fprint(p.promptOut, promptStyle.Render(promptText))
	line, err := p.promptIn.ReadString('\n')
	if strings.TrimSpace(line) == quitSentinel {
		return false
	}
	return err == nil
}
