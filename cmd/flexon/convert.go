package main

import (
	"fmt"

	flexon "github.com/flexon-format/go-flexon"
	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/parse"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	from, err := parseFormat(cfg.From, "flexon")
	if err != nil {
		return err
	}
	to, err := parseFormat(cfg.To, "json")
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readInput(arg)
		if err != nil {
			return err
		}
		node, err := decodeAs(d, from)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(arg), err)
		}
		if err := encodeAs(cfg, cc, node, to); err != nil {
			return err
		}
	}
	return nil
}

func parseFormat(v, dflt string) (string, error) {
	if v == "" {
		v = dflt
	}
	switch v {
	case "flexon", "f", "json", "j", "yaml", "y":
		return v[:1], nil
	}
	return "", fmt.Errorf("%w: unknown format %q", cli.ErrUsage, v)
}

func decodeAs(d []byte, format string) (*ir.Node, error) {
	switch format {
	case "y":
		return flexon.FromYAML(d)
	default:
		// flexon subsumes json
		return parse.Parse(d)
	}
}

func encodeAs(cfg *ConvertConfig, cc *cli.Context, node *ir.Node, format string) error {
	switch format {
	case "y":
		d, err := flexon.ToYAML(node)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	case "j":
		err := encode.Encode(node, cc.Out,
			encode.Pretty(!cfg.Compact),
			encode.WithConfig(flexon.JSONConfig))
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
		return nil
	default:
		opts, err := cfg.encOpts(cc.Out)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
		return nil
	}
}
