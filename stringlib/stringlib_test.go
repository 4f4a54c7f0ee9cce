package stringlib

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestCleanHangul(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain hangul", "사과 바나나", "사과 바나나"},
		{"punctuation and latin", "사과, apple! 바나나?", "사과  바나나"},
		{"digits", "2024년 사과 3개", "년 사과 개"},
		{"newlines kept", "사과\n\t바나나", "사과\n\t바나나"},
		{"jamo dropped", "ㅋㅋ 사과 ㅏ", " 사과 "},
		{"hanja dropped", "漢字 한자", " 한자"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanHangul(tt.in))
		})
	}
}

func TestCleanHangulIdempotent(t *testing.T) {
	inputs := []string{
		"오늘은 2024년 10월 17일, 날씨가 좋다!",
		"Mixed 한글 and English… 😀 이모지",
		"　전각 공백 과 NBSP",
		"",
	}
	for _, in := range inputs {
		once := CleanHangul(in)
		assert.Equal(t, once, CleanHangul(once), "input %q", in)
		for _, r := range once {
			assert.True(t, IsHangulSyllable(r) || unicode.IsSpace(r), "unexpected rune %q", r)
		}
	}
}

func TestIsHangulSyllable(t *testing.T) {
	assert.True(t, IsHangulSyllable('가'))
	assert.True(t, IsHangulSyllable('힣'))
	assert.False(t, IsHangulSyllable('ㄱ'))
	assert.False(t, IsHangulSyllable('a'))
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 2, RuneLen("사과"))
	assert.Equal(t, 6, len("사과"))
	assert.Equal(t, 0, RuneLen(""))
}

func TestHangulRatio(t *testing.T) {
	assert.Equal(t, 0.0, HangulRatio("   "))
	assert.Equal(t, 1.0, HangulRatio("사과 바나나"))
	assert.InDelta(t, 0.5, HangulRatio("사과 ab"), 1e-9)
}

func TestMostlyNonKorean(t *testing.T) {
	assert.False(t, MostlyNonKorean("사과를 먹었다"))
	assert.False(t, MostlyNonKorean("사과 ab"))
	assert.True(t, MostlyNonKorean("I ate an apple 사과"))
	assert.True(t, MostlyNonKorean(""))
}
