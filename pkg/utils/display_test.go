package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisplayWidth tests the behavior of DisplayWidth.
//
// It verifies:
//   - ASCII strings return their byte length
//   - Wide CJK characters count as 2 cells
//   - Empty string has width 0
func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 6, DisplayWidth("lodash"))
	assert.Equal(t, 0, DisplayWidth(""))
	assert.Equal(t, 4, DisplayWidth("テス")) // wide runes count as 2 cells
}

// TestToWidth tests the behavior of ToWidth.
//
// It verifies:
//   - Strings shorter than the target width are padded with spaces
//   - Strings at or beyond the target width are returned unchanged
//   - Non-positive widths leave the string untouched
func TestToWidth(t *testing.T) {
	assert.Equal(t, "abc  ", ToWidth("abc", 5))
	assert.Equal(t, "abcdef", ToWidth("abcdef", 4))
	assert.Equal(t, "abc", ToWidth("abc", 0))
	assert.Equal(t, "abc", ToWidth("abc", -1))
}

// TestMax tests the behavior of Max.
//
// It verifies:
//   - Returns the largest value from the inputs
//   - Returns 0 for no inputs
//   - Handles negative values
func TestMax(t *testing.T) {
	assert.Equal(t, 9, Max(3, 9, 1))
	assert.Equal(t, 0, Max())
	assert.Equal(t, -1, Max(-5, -1))
}
