package format

import (
	"io"
	"strings"

	"github.com/dhamidi/cocanb/encode"
)

// TextEncoder writes the encoded text followed by a newline.
type TextEncoder struct {
	resultWriter
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{resultWriter{w: w}}
}

func (e *TextEncoder) Encode(result *encode.Result) error {
	return e.write(result, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	if e.result == nil {
		return []byte("\n"), nil
	}
	return []byte(e.result.Text + "\n"), nil
}

// MarkedEncoder writes the encoded text with a mark at every separator, so
// the spliced suffix blocks can be told apart from the stems.
type MarkedEncoder struct {
	resultWriter
	mark string
}

func NewMarkedEncoder(w io.Writer, mark string) *MarkedEncoder {
	return &MarkedEncoder{resultWriter: resultWriter{w: w}, mark: mark}
}

func (e *MarkedEncoder) Encode(result *encode.Result) error {
	return e.write(result, e)
}

func (e *MarkedEncoder) MarshalText() ([]byte, error) {
	if e.result == nil {
		return []byte("\n"), nil
	}
	text := strings.Join(e.result.Segments(), e.mark)
	return []byte(text + "\n"), nil
}
