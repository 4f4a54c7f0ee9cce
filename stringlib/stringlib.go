// Package stringlib provides Hangul string functions beyond goLang primitives
package stringlib

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// First and last code points of the precomposed Hangul syllable block (가..힣)
const (
	HangulFirst = '가'
	HangulLast  = '힣'
)

// IsHangulSyllable tells whether r is a precomposed Hangul syllable
func IsHangulSyllable(r rune) bool {
	return r >= HangulFirst && r <= HangulLast
}

// CleanHangul removes every character that is neither a Hangul syllable nor whitespace.
// Applying it twice gives the same result as applying it once.
func CleanHangul(t string) string {
	return strings.Map(func(r rune) rune {
		if IsHangulSyllable(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, t)
}

// RuneLen counts characters, not bytes: a Hangul syllable is 3 bytes in UTF-8
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// MinHangulRatio is the Hangul share under which a text is reported as mostly non-Korean
const MinHangulRatio = 0.5

// HangulRatio is the share of non-space runes that are Hangul syllables, 0 for blank input
func HangulRatio(t string) float64 {
	var hangul, total int
	for _, r := range t {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if IsHangulSyllable(r) {
			hangul++
		}
	}
	if total == 0 {
		return 0
	}

	return float64(hangul) / float64(total)
}

// MostlyNonKorean tells whether fewer than MinHangulRatio of the non-space runes are Hangul
func MostlyNonKorean(t string) bool {
	return HangulRatio(t) < MinHangulRatio
}
