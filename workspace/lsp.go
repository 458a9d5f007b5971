package workspace

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/cocanb/encode"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const (
	lsName = "cocanb"

	// EncodeCommand returns the Cocanb form of the document named by its
	// only argument.
	EncodeCommand = "cocanb.encode"
)

var log = commonlog.GetLogger("cocanb.workspace")

type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string, opts ...encode.Option) *LSPServer {
	ls := &LSPServer{
		workspace: New(opts...),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		Shutdown:                ls.shutdown,
		SetTrace:                ls.setTrace,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		TextDocumentDidSave:     ls.textDocumentDidSave,
		TextDocumentHover:       ls.textDocumentHover,
		WorkspaceExecuteCommand: ls.workspaceExecuteCommand,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) Workspace() *Workspace {
	return ls.workspace
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{EncodeCommand},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("%s %s ready", lsName, ls.version)
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.RemoveFile(path)
	ls.publish(ctx, params.TextDocument.URI, nil)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, []byte(*params.Text))
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc, err := ls.workspace.ScanFile(path)
	if err != nil {
		log.Errorf("rescan %s: %s", path, err)
		return nil
	}
	ls.publish(ctx, params.TextDocument.URI, diagnosticsFor(doc))
	return nil
}

func (ls *LSPServer) update(ctx *glsp.Context, uri protocol.DocumentUri, content []byte) {
	path, err := uriToPath(uri)
	if err != nil {
		log.Errorf("document %s: %s", uri, err)
		return
	}
	doc := ls.workspace.UpdateFile(path, content)
	if doc.Err != nil {
		log.Debugf("encode %s: %s", path, doc.Err)
	}
	ls.publish(ctx, uri, diagnosticsFor(doc))
}

func (ls *LSPServer) publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	result, err := ls.workspace.EncodeLine(path, int(params.Position.Line))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var value string
	if err != nil {
		value = err.Error()
	} else {
		value = result.Text
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: value,
		},
	}, nil
}

type commandResult struct {
	Text       string `json:"text"`
	Separators []int  `json:"separators"`
}

func (ls *LSPServer) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	if params.Command != EncodeCommand {
		return nil, fmt.Errorf("unknown command: %s", params.Command)
	}
	if len(params.Arguments) != 1 {
		return nil, fmt.Errorf("%s: expected 1 argument, got %d", EncodeCommand, len(params.Arguments))
	}
	uri, ok := params.Arguments[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: argument must be a document URI", EncodeCommand)
	}
	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EncodeCommand, err)
	}

	doc := ls.workspace.GetFile(path)
	if doc == nil {
		return nil, fmt.Errorf("%s: document not open: %s", EncodeCommand, uri)
	}
	if doc.Err != nil {
		return nil, fmt.Errorf("%s: %w", EncodeCommand, doc.Err)
	}
	return commandResult{Text: doc.Result.Text, Separators: doc.Result.Separators}, nil
}

// diagnosticsFor reports why a document could not be encoded. Columns are
// counted in runes.
func diagnosticsFor(doc *Document) []protocol.Diagnostic {
	if doc == nil || doc.Err == nil {
		return nil
	}

	var syntaxErr *encode.SyntaxError
	var rng protocol.Range
	message := doc.Err.Error()
	if errors.As(doc.Err, &syntaxErr) {
		start := protocol.Position{
			Line:      protocol.UInteger(syntaxErr.Pos.Line - 1),
			Character: protocol.UInteger(syntaxErr.Pos.Column - 1),
		}
		end := start
		end.Character++
		rng = protocol.Range{Start: start, End: end}
		message = fmt.Sprintf("%v %q", syntaxErr.Err, syntaxErr.Delim)
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return []protocol.Diagnostic{{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
