package encode

import "strings"

const (
	suffixPrefix   = "non"
	overflowMarker = "å"
)

// isRunChar reports whether ch belongs to a run that counts as a single
// unit of a word's length.
func isRunChar(ch rune) bool {
	return isDigit(ch) || ch == '.' || ch == ','
}

// encodedWord is a word split for output. Stem goes to the text right away,
// Code is appended to the innermost suffix accumulator.
type encodedWord struct {
	Stem     string
	Tail     string
	Count    int
	Overflow int
	Code     string
}

func encodeWord(word []rune) encodedWord {
	count := 0
	runStart := -1
	for i, ch := range word {
		if runStart < 0 {
			if isRunChar(ch) {
				runStart = i
			}
			count++
			continue
		}
		if !isRunChar(ch) {
			runStart = -1
			count++
		}
	}

	cut := len(word) - 1
	if runStart >= 0 {
		cut = runStart
	}

	w := encodedWord{
		Stem:     string(word[:cut]),
		Tail:     string(word[cut:]),
		Count:    count,
		Overflow: count / 26,
	}

	var code strings.Builder
	code.WriteString(w.Tail)
	code.WriteString(strings.Repeat(overflowMarker, w.Overflow))
	code.WriteRune(remainderSymbol(count % 26))
	w.Code = code.String()
	return w
}

// remainderSymbol maps 1..25 to a..y. A remainder of 0 maps to '`', so
// counts of 26 and 52 differ only in their overflow markers.
func remainderSymbol(n int) rune {
	return rune('a' - 1 + n)
}
