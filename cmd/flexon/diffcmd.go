package main

import (
	"fmt"

	flexon "github.com/flexon-format/go-flexon"

	"github.com/scott-cotton/cli"
)

func diffFiles(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two inputs", cli.ErrUsage)
	}
	docs, err := inputDocs(args)
	if err != nil {
		return err
	}
	d, err := flexon.Diff(docs[0].node, docs[1].node)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	fmt.Fprintln(cc.Out, d)
	return fmt.Errorf("%s and %s differ", docs[0].name, docs[1].name)
}
