// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package frequency

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lower-cases and strips punctuation", in: "The quick brown fox. The Fox runs!", want: "the quick brown fox the fox runs"},
		{name: "digits vanish", in: "route 66 rocks", want: "route  rocks"},
		{name: "apostrophes join words", in: "Don't stop", want: "dont stop"},
		{name: "keeps tabs and newlines", in: "a\tb\nc", want: "a\tb\nc"},
		{name: "drops non-ASCII letters", in: "Café NAÏVE", want: "caf nave"},
		{name: "empty input", in: "", want: ""},
		{name: "only punctuation", in: "?!.,;:", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeFolded(t *testing.T) {
	assert.Equal(t, "cafe naive", NormalizeFolded("Café NAÏVE"))
	assert.Equal(t, "uber", NormalizeFolded("Über"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"The quick brown fox. The Fox runs!",
		"Ünïcödé\tand 123 numbers\r\n",
		"already normalized text",
		"   leading and trailing   ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_OutputAlphabet(t *testing.T) {
	in := "Hello, World! 42 ÀÉÎ — «quoted» ünd\tmore\nlines\u00a0nbsp"
	for _, r := range Normalize(in) {
		isLower := r >= 'a' && r <= 'z'
		assert.True(t, isLower || unicode.IsSpace(r), "unexpected rune %q", r)
	}
}
