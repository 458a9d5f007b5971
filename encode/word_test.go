package encode

import "testing"

func TestEncodeWord(t *testing.T) {
	tests := []struct {
		word  string
		stem  string
		tail  string
		count int
		code  string
	}{
		{"hello", "hell", "o", 5, "oe"},
		{"a", "", "a", 1, "aa"},
		{"he110", "he", "110", 3, "110c"},
		{"help2man", "help2ma", "n", 6, "nf"},
		{"word,", "word", ",", 5, ",e"},
		{"1.5", "", "1.5", 1, "1.5a"},
		{"ab12,5", "ab", "12,5", 3, "12,5c"},
		{"a1b22c333", "a1b22c", "333", 6, "333f"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := encodeWord([]rune(tt.word))
			if got.Stem != tt.stem {
				t.Errorf("Stem = %q, want %q", got.Stem, tt.stem)
			}
			if got.Tail != tt.tail {
				t.Errorf("Tail = %q, want %q", got.Tail, tt.tail)
			}
			if got.Count != tt.count {
				t.Errorf("Count = %d, want %d", got.Count, tt.count)
			}
			if got.Code != tt.code {
				t.Errorf("Code = %q, want %q", got.Code, tt.code)
			}
		})
	}
}

func TestEncodeWordOverflow(t *testing.T) {
	word := make([]rune, 53)
	for i := range word {
		word[i] = 'z'
	}
	got := encodeWord(word)
	if got.Overflow != 2 {
		t.Errorf("Overflow = %d, want 2", got.Overflow)
	}
	if got.Code != "zååa" {
		t.Errorf("Code = %q, want %q", got.Code, "zååa")
	}
}

// Counts of 0 and 26 share a remainder symbol.
func TestRemainderSymbol(t *testing.T) {
	tests := []struct {
		n    int
		want rune
	}{
		{0, '`'},
		{1, 'a'},
		{5, 'e'},
		{25, 'y'},
		{26 % 26, '`'},
	}
	for _, tt := range tests {
		if got := remainderSymbol(tt.n); got != tt.want {
			t.Errorf("remainderSymbol(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
