package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/parse"

	"github.com/scott-cotton/cli"
)

func flexonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

type namedDoc struct {
	name string
	node *ir.Node
}

// inputDocs parses each argument as a file, "-" as stdin. No arguments
// means stdin.
func inputDocs(args []string) ([]*namedDoc, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]*namedDoc, 0, len(args))
	for _, arg := range args {
		d, err := readInput(arg)
		if err != nil {
			return nil, err
		}
		node, err := parse.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", displayName(arg), err)
		}
		res = append(res, &namedDoc{name: displayName(arg), node: node})
	}
	return res, nil
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func displayName(arg string) string {
	if arg == "-" {
		return "<stdin>"
	}
	return arg
}
