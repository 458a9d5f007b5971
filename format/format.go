package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/cocanb/encode"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(result *encode.Result) error
}

// Names lists the encoders New accepts.
var Names = []string{"text", "json", "marked"}

// DefaultMark is inserted at every separator by the marked encoder.
const DefaultMark = "|"

func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "marked":
		return NewMarkedEncoder(w, DefaultMark), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

type resultWriter struct {
	w      io.Writer
	result *encode.Result
}

func (rw *resultWriter) write(result *encode.Result, m encoding.TextMarshaler) error {
	rw.result = result
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = rw.w.Write(text)
	return err
}
