package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Result is the Cocanb form of an input. Separators are the rune offsets in
// Text at which suffix blocks were spliced in, in non-decreasing order.
type Result struct {
	Text       string
	Separators []int
}

// Segments splits Text at every separator.
func (r *Result) Segments() []string {
	runes := []rune(r.Text)
	segments := make([]string, 0, len(r.Separators)+1)
	start := 0
	for _, sep := range r.Separators {
		if sep > len(runes) {
			sep = len(runes)
		}
		segments = append(segments, string(runes[start:sep]))
		start = sep
	}
	return append(segments, string(runes[start:]))
}

// Encode returns the Cocanb form of input.
func Encode(input string, opts ...Option) (*Result, error) {
	return EncodeReader(strings.NewReader(input), opts...)
}

// EncodeReader reads r to the end and returns the Cocanb form of what it
// read. Nothing is returned unless the whole input was consumed.
func EncodeReader(r io.RuneReader, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	s := newSession(cfg)
	for {
		ch, _, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if err := s.feed(ch); err != nil {
			return nil, err
		}
	}

	if err := s.finish(); err != nil {
		return nil, err
	}
	return s.result(), nil
}
