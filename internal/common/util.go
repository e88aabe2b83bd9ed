package common

import (
	"crypto/rand"
	"strings"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// randLimit is the largest multiple of 36 that fits in a byte. Bytes at or
// above it are discarded so every character is equally likely.
const randLimit = 252

// randRead is a test seam for crypto/rand.Read.
var randRead = rand.Read

// RandSuffix returns n random lowercase alphanumerics. n is capped at 16.
func RandSuffix(n int) string {
	if n <= 0 {
		return ""
	}
	if n > 16 {
		n = 16
	}
	var b strings.Builder
	b.Grow(n)
	buf := make([]byte, 2*n)
	for b.Len() < n {
		if _, err := randRead(buf); err != nil {
			panic("common: random source failed: " + err.Error())
		}
		for _, c := range buf {
			if c >= randLimit {
				continue
			}
			b.WriteByte(base36[c%36])
			if b.Len() == n {
				break
			}
		}
	}
	return b.String()
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
