package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Arabic, Arabic Supplement, Arabic Extended-A and both Presentation Forms blocks.
var arabicScript = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
		{Lo: 0x0750, Hi: 0x077F, Stride: 1},
		{Lo: 0x08A0, Hi: 0x08FF, Stride: 1},
		{Lo: 0xFB50, Hi: 0xFDFF, Stride: 1},
		{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1},
	},
}

// Harakat, tanwin, shadda, sukun and the combining hamza/madda marks left behind by NFD.
var arabicDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
	},
}

var letterVariants = map[rune]rune{
	'أ': 'ا',
	'إ': 'ا',
	'آ': 'ا',
	'ى': 'ي',
	'ة': 'ه',
	'ؤ': 'و',
	'ئ': 'و',
}

func foldLetter(r rune) rune {
	if f, ok := letterVariants[r]; ok {
		return f
	}
	return r
}

func ContainsArabic(text string) bool {
	for _, r := range text {
		if unicode.Is(arabicScript, r) {
			return true
		}
	}
	return false
}

// NormalizeArabic makes Arabic text comparable regardless of diacritics, alef/ya/ha
// variants and case. Note that NFD runs first, so precomposed hamza letters are
// already split into base letter + combining mark before folding.
func NormalizeArabic(text string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(arabicDiacritics)),
		runes.Map(foldLetter),
	)
	s, _, err := transform.String(t, text)
	if err != nil {
		s = text
	}
	return strings.ToLower(s)
}
