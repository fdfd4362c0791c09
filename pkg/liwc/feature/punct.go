package feature

// PunctCounts holds raw occurrence counts of the punctuation classes
// over a whole text.
type PunctCounts struct {
	Period     int
	Comma      int
	Colon      int
	Semicolon  int
	QMark      int
	Exclam     int
	Dash       int
	Quote      int
	Apostrophe int
	Parenth    int
	Other      int
}

// Total sums the eleven class counts.
func (p PunctCounts) Total() int {
	return p.Period + p.Comma + p.Colon + p.Semicolon + p.QMark + p.Exclam +
		p.Dash + p.Quote + p.Apostrophe + p.Parenth + p.Other
}

// CountPunct counts every punctuation class in text. Only opening
// brackets count as Parenth; closing brackets land in Other, as does any
// character that is neither a word character, ASCII whitespace, nor one
// of the named marks.
func CountPunct(text string) PunctCounts {
	var c PunctCounts
	for _, r := range text {
		switch r {
		case '.':
			c.Period++
		case ',':
			c.Comma++
		case ':':
			c.Colon++
		case ';':
			c.Semicolon++
		case '?':
			c.QMark++
		case '!':
			c.Exclam++
		case '-':
			c.Dash++
		case '"':
			c.Quote++
		case '\'':
			c.Apostrophe++
		case '(', '[', '{':
			c.Parenth++
		default:
			if !isWordChar(r) && !isSpaceChar(r) {
				c.Other++
			}
		}
	}
	return c
}

// isWordChar matches the ASCII \w class used throughout the matchers.
func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// isSpaceChar matches the ASCII \s class.
func isSpaceChar(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
