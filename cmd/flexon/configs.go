package main

import (
	"fmt"
	"io"
	"os"

	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=w aliases=wire desc='output in compact single-line form'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Tab     int  `cli:"name=tab desc='spaces per indentation level'"`

	Strict  bool   `cli:"name=strict desc='strict type and property checks'"`
	Escapes bool   `cli:"name=esc desc='re-encode escape sequences in strings'"`
	Delim   string `cli:"name=delim desc='string delimiter character'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) config() (*ir.Config, error) {
	res := ir.Default()
	res.StrictTypes = cfg.Strict
	res.StrictKeys = cfg.Strict
	res.ReplaceEscapes = cfg.Escapes
	if cfg.Delim != "" {
		if len(cfg.Delim) != 1 {
			return nil, fmt.Errorf("%w: -delim takes a single character, got %q", cli.ErrUsage, cfg.Delim)
		}
		res.Delimiter = cfg.Delim[0]
	}
	return res, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) ([]encode.EncodeOption, error) {
	irCfg, err := cfg.config()
	if err != nil {
		return nil, err
	}
	res := []encode.EncodeOption{
		encode.Pretty(!cfg.Compact),
		encode.WithConfig(irCfg),
	}
	if cfg.Tab > 0 {
		res = append(res, encode.TabSize(cfg.Tab))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors())), nil
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=i desc='rewrite files in place'"`
	Fmt   *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=m aliases=merge desc='treat the patch as an RFC 7386 merge patch'"`
	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	From string `cli:"name=from desc='input format: flexon, json, yaml'"`
	To   string `cli:"name=to desc='output format: flexon, json, yaml'"`

	Convert *cli.Command
}
