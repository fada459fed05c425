package main

import (
	"context"
	"errors"
	"sync"

	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/parse"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	node    *ir.Node
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	node, err := parse.Parse([]byte(content))
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		node:    node,
		err:     err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil || s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnose(doc),
	})
}

func diagnose(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	// parse errors carry 1-based lines, LSP wants 0-based
	line := uint32(0)
	if l := errorLine(doc.err); l > 0 {
		line = uint32(l - 1)
	}
	return append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line + 1, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "flexon",
	})
}

func errorLine(err error) int {
	var (
		structErr *ir.StructError
		rangeErr  *ir.RangeError
		mutErr    *ir.MutationError
	)
	switch {
	case errors.As(err, &structErr):
		return structErr.Line
	case errors.As(err, &rangeErr):
		return rangeErr.Line
	case errors.As(err, &mutErr):
		return mutErr.Line
	}
	return 0
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	// full sync: the last change carries the whole document
	content := doc.content
	for _, change := range params.ContentChanges {
		content = change.Text
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
