package encode

import "unicode/utf8"

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\f', '\n', '\r', '\t', '\v':
		return true
	}
	return false
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isTerminator(ch rune) bool {
	return ch == '.' || ch == '?' || ch == '!'
}

func isOpener(ch rune) bool {
	switch ch {
	case '(', '[', '{', '<':
		return true
	}
	return false
}

func isCloser(ch rune) bool {
	return openerFor(ch) != 0
}

func openerFor(ch rune) rune {
	switch ch {
	case ')':
		return '('
	case ']':
		return '['
	case '}':
		return '{'
	case '>':
		return '<'
	}
	return 0
}

func runeLen(ch rune) int {
	if n := utf8.RuneLen(ch); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}
