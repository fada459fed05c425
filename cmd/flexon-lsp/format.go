package main

import (
	"context"
	"strings"

	"github.com/flexon-format/go-flexon/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil || doc.node == nil {
		return nil, nil
	}

	opts := []encode.EncodeOption{}
	if params.Options.TabSize > 0 {
		opts = append(opts, encode.TabSize(int(params.Options.TabSize)))
	}
	formatted, err := encode.String(doc.node, opts...)
	if err != nil {
		return nil, nil
	}
	formatted += "\n"

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
