package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowbay/marketkit/pkg/sanitizer"
)

func TestNormalizeUsername(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{"Alice1", "alice1"},
		{"  Bob22  ", "bob22"},
		{"CHARLIE", "charlie"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, sanitizer.NormalizeUsername(tc.in))
	}
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.CollapseWhitespace("  a \t b\n c "))
	assert.Equal(t, "", sanitizer.CollapseWhitespace("   "))
}

func TestApply(t *testing.T) {
	t.Parallel()

	got := sanitizer.Apply(" MixedCase ", sanitizer.Trim, sanitizer.ToLower)
	assert.Equal(t, "mixedcase", got)
}
