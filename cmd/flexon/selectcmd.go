package main

import (
	"fmt"

	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/eval"

	"github.com/scott-cotton/cli"
)

func selectNodes(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select needs an expression argument", cli.ErrUsage)
	}
	expr := args[0]
	irCfg, err := cfg.config()
	if err != nil {
		return err
	}
	docs, err := inputDocs(args[1:])
	if err != nil {
		return err
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		nodes, err := eval.Select(doc.node, expr, irCfg)
		if err != nil {
			return fmt.Errorf("%s: %w", doc.name, err)
		}
		for _, node := range nodes {
			if err := encode.Encode(node, cc.Out, opts...); err != nil {
				return err
			}
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
