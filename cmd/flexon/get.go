package main

import (
	"fmt"

	"github.com/flexon-format/go-flexon/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get needs a path argument", cli.ErrUsage)
	}
	path := args[0]
	docs, err := inputDocs(args[1:])
	if err != nil {
		return err
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		nodes, err := resolvePath(doc.node, path)
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
