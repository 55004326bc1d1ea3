package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeString_SizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"Under Limit", MaxStringArgSize - 1, false},
		{"Exact Limit", MaxStringArgSize, false},
		{"Over Limit", MaxStringArgSize + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeString(strings.Repeat("a", tt.size))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrArgTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeString_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "Living Room", "Living Room"},
		{"Safe Controls", "Line1\nLine2\tTabbed", "Line1\nLine2\tTabbed"},
		{"ANSI Code", "\x1b[31mKitchen\x1b[0m", "[31mKitchen[0m"},
		{"Null Byte", "Null\x00Byte", "NullByte"},
		{"Bell", "Ding\x07", "Ding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeString_InvalidUTF8(t *testing.T) {
	_, err := SanitizeString("bad \xff byte")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestSanitizeArgs_CopiesInput(t *testing.T) {
	in := map[string]any{"zoneName": "Kit\x00chen", "on": true}
	out, err := SanitizeArgs(in)
	require.NoError(t, err)

	assert.Equal(t, "Kitchen", out["zoneName"])
	assert.Equal(t, true, out["on"])
	assert.Equal(t, "Kit\x00chen", in["zoneName"], "caller map untouched")

	_, err = SanitizeArgs(map[string]any{"name": strings.Repeat("x", MaxStringArgSize+1)})
	assert.ErrorContains(t, err, `field "name"`)
}
