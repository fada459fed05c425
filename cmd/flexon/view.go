package main

import (
	"fmt"

	"github.com/flexon-format/go-flexon/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := inputDocs(args)
	if err != nil {
		return err
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if err := encode.Encode(doc.node, cc.Out, opts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
