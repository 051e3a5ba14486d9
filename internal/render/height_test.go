package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrHeight(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"single line", "active", 1},
		{"two lines", "file system\ndegraded", 2},
		{"trailing newline", "a\n", 2},
		{"three lines", "a\nb\nc", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrHeight(tt.text))
		})
	}
}

func TestRowHeight(t *testing.T) {
	assert.Equal(t, 1, RowHeight(nil))
	assert.Equal(t, 1, RowHeight([]string{}))
	assert.Equal(t, 1, RowHeight([]string{"", "a"}))
	assert.Equal(t, 3, RowHeight([]string{"a", "x\ny\nz", "b\nc"}))
}
