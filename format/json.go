package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cocanb/encode"
)

type JSONEncoder struct {
	resultWriter
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{resultWriter{w: w}}
}

func (e *JSONEncoder) Encode(result *encode.Result) error {
	return e.write(result, e)
}

type jsonResult struct {
	Text       string `json:"text"`
	Separators []int  `json:"separators"`
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsonResult{Separators: []int{}}
	if e.result != nil {
		data.Text = e.result.Text
		if e.result.Separators != nil {
			data.Separators = e.result.Separators
		}
	}
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
