package mnemonic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbay/marketkit/pkg/mnemonic"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	phrase, err := mnemonic.Generate()
	require.NoError(t, err)

	words := strings.Fields(phrase)
	assert.Len(t, words, mnemonic.WordCount)
	for _, w := range words {
		assert.Equal(t, strings.ToLower(w), w, "words are lowercase")
	}
}

func TestGenerate_Distinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		phrase, err := mnemonic.Generate()
		require.NoError(t, err)
		assert.False(t, seen[phrase], "phrases must not repeat")
		seen[phrase] = true
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"already normal", "amber falcon orbit", "amber falcon orbit"},
		{"mixed case", "Amber FALCON Orbit", "amber falcon orbit"},
		{"extra whitespace", "  amber \t falcon\n orbit ", "amber falcon orbit"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, mnemonic.Normalize(tc.in))
		})
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	phrase, err := mnemonic.Generate()
	require.NoError(t, err)

	assert.True(t, mnemonic.Verify(phrase, phrase))
	assert.True(t, mnemonic.Verify(phrase, "  "+strings.ToUpper(phrase)+"  "))
	assert.False(t, mnemonic.Verify(phrase, phrase+" extra"))
	assert.False(t, mnemonic.Verify(phrase, ""))
}
