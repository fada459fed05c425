package main

import (
	"fmt"

	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/ir/dotpath"
)

// resolvePath resolves a dotted path like servers[0].host against node.
// Wildcard paths fan out and may match any number of nodes; exact paths
// match exactly one or fail.
func resolvePath(node *ir.Node, path string) ([]*ir.Node, error) {
	p, err := dotpath.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("bad path %q: %w", path, err)
	}
	if p.HasWildcard() {
		return p.Select(node), nil
	}
	target, err := p.Lookup(node)
	if err != nil {
		return nil, err
	}
	return []*ir.Node{target}, nil
}
