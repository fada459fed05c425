package main

import (
	"fmt"

	flexon "github.com/flexon-format/go-flexon"
	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/ir"

	"github.com/scott-cotton/cli"
)

func patchFiles(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch needs a patch file argument", cli.ErrUsage)
	}
	patchDocs, err := inputDocs(args[:1])
	if err != nil {
		return err
	}
	patch := patchDocs[0].node
	docs, err := inputDocs(args[1:])
	if err != nil {
		return err
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		var out *ir.Node
		if cfg.Merge {
			out, err = flexon.MergePatch(doc.node, patch)
		} else {
			out, err = flexon.ApplyPatch(doc.node, patch)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", doc.name, err)
		}
		if err := encode.Encode(out, cc.Out, opts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
