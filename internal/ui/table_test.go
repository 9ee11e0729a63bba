package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfigTable(t *testing.T) {
	rows := []ConfigRow{
		{Key: "paging.page_size", Value: "20", Env: "STATUSBOX_PAGING_PAGE_SIZE"},
		{Key: "paging.fail_every", Value: "3", Env: "STATUSBOX_PAGING_FAIL_EVERY", Overridden: true},
	}

	output := RenderConfigTable(rows)
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")

	// header, border, two rows
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, lines[0], "VALUE")
	assert.Contains(t, lines[0], "ENV")
	assert.True(t, strings.HasPrefix(lines[2], "  paging.page_size"))
	assert.True(t, strings.HasPrefix(lines[3], "* paging.fail_every"))

	// values line up
	assert.Equal(t, strings.Index(lines[2], "20"), strings.Index(lines[3], "3 "))
	assert.Equal(t, strings.Index(lines[2], "STATUSBOX_"), strings.Index(lines[3], "STATUSBOX_"))
}

func TestRenderConfigTable_Empty(t *testing.T) {
	assert.Equal(t, "No config keys", RenderConfigTable(nil))
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{name: "pads short", input: "ab", width: 4, want: "ab  "},
		{name: "exact", input: "abcd", width: 4, want: "abcd"},
		{name: "longer untouched", input: "abcdef", width: 4, want: "abcdef"},
		{name: "wide runes", input: "✓", width: 3, want: "✓  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, padRight(tt.input, tt.width))
		})
	}
}
