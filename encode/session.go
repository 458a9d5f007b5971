package encode

import (
	"strings"
	"unicode"
)

// frame is one level of the scope stack. frames[0] is the ambient level and
// has no delimiter. A vacated frame (pending == false) gets a fresh
// accumulator when the next word starts on its level.
type frame struct {
	delim    rune
	pos      Position
	verbatim bool
	pending  bool
	suffix   []rune
}

func (f *frame) reset() {
	f.pending = true
	f.suffix = append(f.suffix[:0], []rune(suffixPrefix)...)
}

func (f *frame) vacate() []rune {
	suffix := f.suffix
	f.pending = false
	f.suffix = nil
	return suffix
}

// session owns all state of one encoding run.
type session struct {
	cfg        config
	out        strings.Builder
	outLen     int
	separators []int
	word       []rune
	frames     []frame
	pos        Position
}

func newSession(cfg config) *session {
	s := &session{
		cfg:    cfg,
		frames: make([]frame, 1, 8),
		pos:    Position{Line: 1, Column: 1},
	}
	s.frames[0].reset()
	return s
}

func (s *session) top() *frame {
	return &s.frames[len(s.frames)-1]
}

func (s *session) write(ch rune) {
	s.out.WriteRune(ch)
	s.outLen++
}

func (s *session) writeString(str string) {
	s.out.WriteString(str)
	s.outLen += len([]rune(str))
}

// splice records a separator at the current end of the text and writes the
// accumulated suffix there.
func (s *session) splice(suffix []rune) {
	s.separators = append(s.separators, s.outLen)
	s.out.WriteString(string(suffix))
	s.outLen += len(suffix)
}

func (s *session) push(delim rune, verbatim bool) {
	s.frames = append(s.frames, frame{delim: delim, pos: s.pos, verbatim: verbatim})
	if !verbatim {
		s.top().reset()
	}
}

func (s *session) pop() frame {
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

// closeScope closes the innermost scope. A scope whose accumulator was
// already vacated by a sentence terminator is left open.
func (s *session) closeScope() {
	if !s.top().pending {
		return
	}
	f := s.pop()
	s.splice(f.suffix)
}

func (s *session) flushWord() {
	if len(s.word) == 0 {
		return
	}
	w := encodeWord(s.word)
	s.writeString(w.Stem)
	f := s.top()
	f.suffix = append(f.suffix, []rune(w.Code)...)
	s.word = s.word[:0]
}

func (s *session) feed(ch rune) error {
	if err := s.dispatch(ch); err != nil {
		return err
	}
	s.advance(ch)
	return nil
}

func (s *session) advance(ch rune) {
	s.pos.Offset += runeLen(ch)
	if ch == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
}

func (s *session) dispatch(ch rune) error {
	if s.cfg.verbatimTags && s.top().verbatim {
		s.write(ch)
		if ch == '>' {
			s.pop()
		}
		return nil
	}

	switch {
	case isSpace(ch):
		s.flushWord()

	case ch == '"' || ch == '\'':
		s.flushWord()
		if s.top().delim != ch {
			s.push(ch, false)
		} else {
			s.closeScope()
		}
		s.write(ch)

	case ch == '<' && s.cfg.verbatimTags:
		s.flushWord()
		s.push(ch, true)
		s.write(ch)

	case isOpener(ch):
		s.flushWord()
		s.push(ch, false)
		s.write(ch)

	case isCloser(ch):
		s.flushWord()
		if s.top().delim != openerFor(ch) {
			return &SyntaxError{Err: ErrMismatchedDelimiter, Delim: ch, Pos: s.pos}
		}
		s.closeScope()
		s.write(ch)

	case isTerminator(ch):
		s.flushWord()
		s.splice(s.top().vacate())
		s.write(ch)

	case isDigit(ch) && len(s.word) == 0:
		s.write(ch)

	default:
		if f := s.top(); !f.pending {
			f.reset()
		}
		s.word = append(s.word, unicode.ToLower(ch))
	}
	return nil
}

func (s *session) finish() error {
	s.flushWord()
	if len(s.frames) > 1 {
		if f := s.reopenedQuote(); f != nil {
			return &SyntaxError{Err: ErrMismatchedDelimiter, Delim: f.delim, Pos: f.pos}
		}
		f := s.top()
		return &SyntaxError{Err: ErrUnterminatedGroup, Delim: f.delim, Pos: f.pos}
	}
	if f := s.top(); f.pending {
		s.splice(f.vacate())
	}
	return nil
}

// reopenedQuote returns the first quote scope that was opened while a scope
// of the same quote was already open further out. When such input ends
// unterminated, that quote was meant to close the outer scope but an
// inner scope was still in the way.
func (s *session) reopenedQuote() *frame {
	for i := 2; i < len(s.frames); i++ {
		f := &s.frames[i]
		if f.delim != '"' && f.delim != '\'' {
			continue
		}
		for j := 1; j < i; j++ {
			if s.frames[j].delim == f.delim {
				return f
			}
		}
	}
	return nil
}

func (s *session) result() *Result {
	separators := s.separators
	if separators == nil {
		separators = []int{}
	}
	return &Result{
		Text:       s.out.String(),
		Separators: separators,
	}
}
