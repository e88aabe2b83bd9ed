package common

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandSuffix_LengthAndAlphabet(t *testing.T) {
	s := RandSuffix(9)
	assert.Len(t, s, 9)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(base36, r), "unexpected rune %q", r)
	}
}

func TestRandSuffix_Bounds(t *testing.T) {
	assert.Equal(t, "", RandSuffix(0))
	assert.Equal(t, "", RandSuffix(-3))
	assert.Len(t, RandSuffix(40), 16)
}

func TestRandSuffix_Distinct(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		s := RandSuffix(9)
		_, dup := seen[s]
		require.False(t, dup, "duplicate suffix %q after %d draws", s, i)
		seen[s] = struct{}{}
	}
}

func TestRandSuffix_UsesWholeAlphabet(t *testing.T) {
	counts := make(map[rune]int)
	for i := 0; i < 2000; i++ {
		for _, r := range RandSuffix(9) {
			counts[r]++
		}
	}
	// 18000 characters over 36 symbols: each is expected about 500 times.
	assert.Len(t, counts, len(base36))
	for r, c := range counts {
		assert.Greater(t, c, 300, "character %q is underrepresented", r)
	}
}

func TestRandSuffix_DiscardsBiasedBytes(t *testing.T) {
	orig := randRead
	t.Cleanup(func() { randRead = orig })

	randRead = func(b []byte) (int, error) {
		for i := range b {
			b[i] = 255
		}
		b[0], b[len(b)-1] = 252, 37
		return len(b), nil
	}
	assert.Equal(t, "1", RandSuffix(1))

	randRead = func([]byte) (int, error) { return 0, errors.New("no entropy") }
	assert.Panics(t, func() { RandSuffix(3) })
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" x "))
}

func TestHistoryKey(t *testing.T) {
	assert.Equal(t, "history_a@x.com", HistoryKey("a@x.com"))
}
