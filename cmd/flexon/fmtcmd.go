package main

import (
	"fmt"

	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/file"
	"github.com/flexon-format/go-flexon/ir"

	"github.com/scott-cotton/cli"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -i needs file arguments", cli.ErrUsage)
	}
	irCfg, err := cfg.config()
	if err != nil {
		return err
	}
	if !cfg.Write {
		return printFormatted(cfg, cc, args, irCfg)
	}
	for _, path := range args {
		node, err := file.ParseFile(path)
		if err != nil {
			return err
		}
		err = file.WriteFile(path, node,
			encode.Pretty(!cfg.Compact),
			encode.WithConfig(irCfg))
		if err != nil {
			return err
		}
	}
	return nil
}

func printFormatted(cfg *FmtConfig, cc *cli.Context, args []string, irCfg *ir.Config) error {
	docs, err := inputDocs(args)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		err := encode.Encode(doc.node, cc.Out,
			encode.Pretty(!cfg.Compact),
			encode.WithConfig(irCfg))
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
