package onyxfont

// Manual UTF-8 decoding for the text pipeline. The decoder is total: any
// byte sequence decodes to *something*, with malformed input mapping to
// the unicode replacement character while always making forward progress.

// ReplacementChar is the codepoint produced when decoding malformed,
// overlong or surrogate-encoded UTF-8 sequences.
const ReplacementChar rune = 0xFFFD

func isContinuation(b byte) bool { return b & 0xC0 == 0x80 }

// DecodeOne decodes the first codepoint of the given string, returning
// the codepoint and the number of bytes consumed. Empty input returns
// (ReplacementChar, 0). Any structurally invalid, overlong or
// surrogate-encoded sequence returns (ReplacementChar, 1): exactly the
// offending lead byte is consumed, so looping over DecodeOne always
// advances on non-empty input.
func DecodeOne(str string) (rune, int) {
	if len(str) == 0 { return ReplacementChar, 0 }

	first := str[0]

	// ascii
	if first < 0x80 { return rune(first), 1 }

	// stray continuation byte or invalid 11111xxx lead byte
	if isContinuation(first) || first >= 0xF8 { return ReplacementChar, 1 }

	// 110xxxxx 10xxxxxx
	if first & 0xE0 == 0xC0 {
		if len(str) < 2 || !isContinuation(str[1]) { return ReplacementChar, 1 }
		cp := rune(first & 0x1F) << 6 | rune(str[1] & 0x3F)
		if cp < 0x80 { return ReplacementChar, 1 } // overlong
		return cp, 2
	}

	// 1110xxxx 10xxxxxx 10xxxxxx
	if first & 0xF0 == 0xE0 {
		if len(str) < 3 || !isContinuation(str[1]) || !isContinuation(str[2]) {
			return ReplacementChar, 1
		}
		cp := rune(first & 0x0F) << 12 | rune(str[1] & 0x3F) << 6 | rune(str[2] & 0x3F)
		if cp < 0x800 { return ReplacementChar, 1 } // overlong
		if cp >= 0xD800 && cp <= 0xDFFF { return ReplacementChar, 1 } // surrogate
		return cp, 3
	}

	// 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
	if first & 0xF8 == 0xF0 {
		if len(str) < 4 || !isContinuation(str[1]) || !isContinuation(str[2]) || !isContinuation(str[3]) {
			return ReplacementChar, 1
		}
		cp := rune(first & 0x07) << 18 | rune(str[1] & 0x3F) << 12 |
		      rune(str[2] & 0x3F) << 6 | rune(str[3] & 0x3F)
		if cp < 0x10000  { return ReplacementChar, 1 } // overlong
		if cp > 0x10FFFF { return ReplacementChar, 1 } // beyond unicode range
		return cp, 4
	}

	return ReplacementChar, 1
}

// CodepointCount returns the number of codepoints that [DecodeOne]
// would produce for the given string. Malformed bytes count as one
// replacement codepoint each.
func CodepointCount(str string) int {
	count := 0
	for len(str) > 0 {
		_, size := DecodeOne(str)
		str = str[size:]
		count += 1
	}
	return count
}

// A CodepointIterator is a lazy, finite, forward-only sequence of the
// codepoints of a string, as decoded by [DecodeOne]. The zero value is
// an exhausted iterator; use [Codepoints]() to create a live one.
type CodepointIterator struct {
	text string
	index int
}

// Codepoints returns an iterator over the codepoints of the given text.
func Codepoints(text string) CodepointIterator {
	return CodepointIterator{ text: text }
}

// Next returns the next codepoint of the sequence, or (-1, false) if
// the sequence is exhausted.
func (self *CodepointIterator) Next() (rune, bool) {
	if self.index >= len(self.text) { return -1, false }
	codePoint, size := DecodeOne(self.text[self.index:])
	self.index += size
	return codePoint, true
}

// Reset rewinds the iterator to the start of its text.
func (self *CodepointIterator) Reset() { self.index = 0 }
