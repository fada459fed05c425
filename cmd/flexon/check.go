package main

import (
	"fmt"

	"github.com/flexon-format/go-flexon/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		d, err := readInput(arg)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d); err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", displayName(arg), err)
			bad++
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", displayName(arg))
	}
	if bad != 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", bad, len(args))
	}
	return nil
}
