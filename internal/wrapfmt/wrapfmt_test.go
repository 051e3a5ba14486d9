package wrapfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultmgr/fmcli/internal/resource"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(""))
	assert.Equal(t, 5, Width("abcde"))
	assert.Equal(t, 7, Width("ab\nabcdefg\ncd"))
}

func TestPolicy_ForceNoWrapRestores(t *testing.T) {
	p := NewPolicy(false)
	assert.False(t, p.NoWrap())

	restore := p.ForceNoWrap()
	assert.True(t, p.NoWrap())
	restore()
	assert.False(t, p.NoWrap())

	// Forcing on an already-forced policy restores to forced.
	p = NewPolicy(true)
	restore = p.ForceNoWrap()
	restore()
	assert.True(t, p.NoWrap())

	var nilPolicy *Policy
	assert.False(t, nilPolicy.NoWrap())
}

func TestWrapper_Format(t *testing.T) {
	obj := resource.MapResource{"reason_text": "file system is degraded on host controller-0"}
	w := NewWrapper("reason_text", nil, 12, 44)

	wrapped := w.Format(obj, NewPolicy(false))
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, Width(line), 12, "line %q exceeds column width", line)
	}

	unwrapped := w.Format(obj, NewPolicy(true))
	assert.Equal(t, "file system is degraded on host controller-0", unwrapped)

	// Wrap then unwrap must reproduce the same words.
	assert.Equal(t, unwrapped, strings.Join(strings.Fields(wrapped), " "))
}

func TestWrapper_ColumnCharLen(t *testing.T) {
	w := NewWrapper("f", nil, 20, 40)
	assert.Equal(t, 20, w.ColumnCharLen(w.DesiredWidth()))
	assert.Equal(t, minColumnWidth, w.ColumnCharLen(2))
	assert.Equal(t, 40, w.ColumnCharLen(100))

	narrow := NewWrapper("f", nil, 3, 3)
	assert.Equal(t, 3, narrow.ColumnCharLen(100))
	assert.Equal(t, 3, narrow.ColumnCharLen(1))
}

func TestAsWrappingFormatters_FitsNaturally(t *testing.T) {
	objs := []resource.Resource{
		resource.MapResource{"name": "a", "status": "up"},
		resource.MapResource{"name": "b", "status": "down"},
	}
	fields := []string{"name", "status"}
	labels := []string{"Name", "Status"}

	fmts := AsWrappingFormatters(objs, fields, labels, nil, nil, 80)
	require.Len(t, fmts, 2)
	require.True(t, fmts["name"].IsWrapper())
	require.True(t, fmts["status"].IsWrapper())

	// Everything fits, so desired widths are the natural content widths.
	assert.Equal(t, 6, fmts["status"].Wrapper().DesiredWidth())
	assert.Equal(t, "down", fmts["status"].Format(objs[1], NewPolicy(false)))
}

func TestAsWrappingFormatters_ShrinksToTerminal(t *testing.T) {
	long := strings.Repeat("alarm ", 20) // 119 chars of wide content
	objs := []resource.Resource{
		resource.MapResource{"id": "800.001", "reason_text": long},
	}
	fields := []string{"id", "reason_text"}
	labels := []string{"ID", "Reason Text"}

	fmts := AsWrappingFormatters(objs, fields, labels, nil, []string{"id"}, 60)

	// id is listed no-wrap and has no user formatter: raw attribute path.
	_, ok := fmts["id"]
	assert.False(t, ok)

	rt := fmts["reason_text"].Wrapper()
	require.NotNil(t, rt)
	assert.Less(t, rt.DesiredWidth(), Width(long))
	assert.GreaterOrEqual(t, rt.DesiredWidth(), minColumnWidth)

	// The wrapped column plus the fixed column must fit the terminal.
	rendered := fmts["reason_text"].Format(objs[0], NewPolicy(false))
	assert.LessOrEqual(t, Width(rendered), rt.ColumnCharLen(rt.DesiredWidth()))
}

func TestAsWrappingFormatters_KeepsUserFormatters(t *testing.T) {
	upper := Plain(func(r resource.Resource) string {
		return strings.ToUpper(resource.AttrOrEmpty(r, "severity"))
	})
	objs := []resource.Resource{resource.MapResource{"severity": "critical"}}

	fmts := AsWrappingFormatters(objs, []string{"severity"}, []string{"Severity"},
		map[string]Formatter{"severity": upper}, nil, 80)

	f := fmts["severity"]
	require.True(t, f.IsWrapper(), "plain user formatters are promoted to wrapping")
	assert.Equal(t, "CRITICAL", f.Wrapper().Unwrapped(objs[0]))

	// A field forced no-wrap keeps the user formatter untouched.
	fmts = AsWrappingFormatters(objs, []string{"severity"}, []string{"Severity"},
		map[string]Formatter{"severity": upper}, []string{"severity"}, 80)
	f = fmts["severity"]
	require.False(t, f.IsWrapper())
	assert.Equal(t, "CRITICAL", f.Format(objs[0], nil))
}

func TestAllocateWidths_NothingToShrink(t *testing.T) {
	naturals := []int{30, 40}
	got := allocateWidths(naturals, []bool{false, false}, 20)
	assert.Equal(t, naturals, got)
}
