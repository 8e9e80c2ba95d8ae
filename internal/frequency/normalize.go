// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package frequency normalizes extracted text, filters stop words, and
// ranks the surviving tokens by how often they occur.
package frequency

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases text and deletes every character that is not an
// ASCII letter or whitespace. Digits and punctuation vanish without leaving
// a gap, so "don't" becomes "dont" and "fox." becomes "fox".
//
// Normalize is idempotent and never fails.
func Normalize(text string) string {
	return strings.Map(keepLetterOrSpace, strings.ToLower(text))
}

// NormalizeFolded is Normalize with accented letters mapped to their base
// letter first, so "Café" becomes "cafe" rather than "caf".
func NormalizeFolded(text string) string {
	return Normalize(foldDiacritics(text))
}

func keepLetterOrSpace(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r
	case unicode.IsSpace(r):
		return r
	}
	return -1
}

// foldDiacritics decomposes text (NFD) and drops the combining marks.
func foldDiacritics(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, norm.NFD.String(text))
}
