package rain

// alphabet is the glyph set streams draw from: half-width Katakana, Latin
// capitals, digits and a handful of symbols. Built once and never modified.
var alphabet = buildAlphabet()

func buildAlphabet() []rune {
	runes := make([]rune, 0, 107)
	for r := '\uff66'; r <= '\uff9d'; r++ {
		runes = append(runes, r)
	}
	for r := 'A'; r <= 'Z'; r++ {
		runes = append(runes, r)
	}
	for r := '0'; r <= '9'; r++ {
		runes = append(runes, r)
	}
	return append(runes, []rune("<>=+-*:;|&%$#@!")...)
}

// Alphabet returns a copy of the glyph set in index order.
func Alphabet() []rune {
	return append([]rune(nil), alphabet...)
}

// AlphabetSize returns the number of glyphs in the set.
func AlphabetSize() int { return len(alphabet) }

// Glyph returns the rune at idx.
func Glyph(idx int) (rune, bool) {
	if idx < 0 || idx >= len(alphabet) {
		return 0, false
	}
	return alphabet[idx], true
}
