// Package commands implements the bodies of the laxml command line tool.
package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const logKey = "log"

// NewApp assembles the laxml command line tool.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "laxml"
	app.Usage = "format, strip and query XML documents, forgiving broken markup"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "print debug information"},
		&cli.BoolFlag{Name: "strict", Usage: "require well-formed XML instead of repairing it"},
		&cli.BoolFlag{Name: "keep-pis", Usage: "keep processing instructions in the tree"},
		&cli.BoolFlag{Name: "drop-comments", Usage: "drop comments from the tree"},
	}
	app.Before = func(ctx *cli.Context) error {
		var (
			log *zap.Logger
			err error
		)
		if ctx.Bool("debug") {
			log, err = zap.NewDevelopment()
		} else {
			log, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("unable to create logger: %w", err)
		}
		ctx.App.Metadata[logKey] = log
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		if log, ok := ctx.App.Metadata[logKey].(*zap.Logger); ok {
			_ = log.Sync()
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "fmt",
			Usage:     "pretty print a document",
			ArgsUsage: "SOURCE",
			Flags: []cli.Flag{
				outputFlag(),
				&cli.StringFlag{Name: "style", Value: "spaces", Usage: "indentation style: spaces or tabs"},
				&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Value: 2, Usage: "spaces per indentation level"},
			},
			Action: Format,
		},
		{
			Name:      "strip",
			Usage:     "remove attributes, elements or tags from a document",
			ArgsUsage: "SOURCE",
			Flags: []cli.Flag{
				outputFlag(),
				&cli.StringSliceFlag{Name: "attr", Aliases: []string{"a"}, Usage: "attribute name pattern to delete (may repeat, * wildcards)"},
				&cli.StringSliceFlag{Name: "elem", Aliases: []string{"e"}, Usage: "element tag to delete with its subtree (may repeat)"},
				&cli.StringSliceFlag{Name: "tag", Aliases: []string{"t"}, Usage: "element tag to splice out, keeping its content (may repeat)"},
				&cli.BoolFlag{Name: "comments", Usage: "delete comment nodes"},
				&cli.BoolFlag{Name: "keep-tails", Usage: "keep the trailing text of deleted elements"},
			},
			Action: Strip,
		},
		{
			Name:      "query",
			Usage:     "evaluate an XPath expression against a document",
			ArgsUsage: "SOURCE",
			Flags: []cli.Flag{
				outputFlag(),
				&cli.StringFlag{Name: "xpath", Aliases: []string{"x"}, Required: true, Usage: "XPath expression"},
				&cli.BoolFlag{Name: "values", Usage: "print string values instead of markup"},
			},
			Action: Query,
		},
		{
			Name:      "rebase",
			Usage:     "rewrite relative href attributes against a base URL",
			ArgsUsage: "SOURCE",
			Flags: []cli.Flag{
				outputFlag(),
				&cli.StringFlag{Name: "base", Aliases: []string{"b"}, Required: true, Usage: "base URL"},
			},
			Action: Rebase,
		},
	}
	return app
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write result to `FILE` instead of stdout"}
}

func logger(ctx *cli.Context) *zap.Logger {
	if log, ok := ctx.App.Metadata[logKey].(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}
