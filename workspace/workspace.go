package workspace

import (
	"bytes"
	"os"
	"sort"
	"sync"

	"github.com/dhamidi/cocanb/encode"
)

// Workspace keeps the documents an editor has open together with their
// latest encoding.
type Workspace struct {
	mu    sync.RWMutex
	opts  []encode.Option
	files map[string]*Document
}

type Document struct {
	Path    string
	Content []byte
	Result  *encode.Result
	Err     error
}

func New(opts ...encode.Option) *Workspace {
	return &Workspace{
		opts:  opts,
		files: make(map[string]*Document),
	}
}

func (w *Workspace) ScanFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.UpdateFile(path, content), nil
}

// UpdateFile re-encodes content and stores it under path. Encoding failures
// are kept on the returned document rather than returned.
func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	result, err := encode.Encode(string(content), w.opts...)
	doc := &Document{
		Path:    path,
		Content: content,
		Result:  result,
		Err:     err,
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// EncodeLine encodes a single line of a document on its own.
func (w *Workspace) EncodeLine(path string, line int) (*encode.Result, error) {
	doc := w.GetFile(path)
	if doc == nil {
		return nil, os.ErrNotExist
	}
	text, ok := lineAt(doc.Content, line)
	if !ok {
		return nil, os.ErrNotExist
	}
	return encode.Encode(text, w.opts...)
}

// lineAt returns the 0-based line of content without its line ending.
func lineAt(content []byte, line int) (string, bool) {
	if line < 0 {
		return "", false
	}
	start := 0
	for i := 0; i < line; i++ {
		next := bytes.IndexByte(content[start:], '\n')
		if next < 0 {
			return "", false
		}
		start += next + 1
	}
	end := len(content)
	if next := bytes.IndexByte(content[start:], '\n'); next >= 0 {
		end = start + next
	}
	if end > start && content[end-1] == '\r' {
		end--
	}
	return string(content[start:end]), true
}
