package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/anglebracket/laxml"
	"github.com/anglebracket/laxml/utils"
)

// openInput opens the document named by the first positional argument.
// "-" or no argument means stdin.
func openInput(ctx *cli.Context) (io.ReadCloser, string, error) {
	name := ctx.Args().Get(0)
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, name, err
	}
	return f, name, nil
}

// loadDocument reads and parses the command input, honoring the global
// parser flags.
func loadDocument(ctx *cli.Context, log *zap.Logger, extra ...laxml.ParseOption) (*etree.Document, string, error) {
	in, name, err := openInput(ctx)
	if err != nil {
		return nil, name, fmt.Errorf("unable to open input: %w", err)
	}
	defer in.Close()

	header, r, err := utils.SniffHeader(in)
	if err != nil {
		return nil, name, err
	}
	if !utils.LooksLikeMarkup(header) && !utils.IsGzip(header) {
		log.Debug("Input does not look like markup", zap.String("source", name))
	}

	p := laxml.NewParser(
		laxml.Strict(ctx.Bool("strict")),
		laxml.RemoveComments(ctx.Bool("drop-comments")),
		laxml.RemovePIs(!ctx.Bool("keep-pis")),
	)
	opts := append([]laxml.ParseOption{laxml.WithParser(p)}, extra...)

	doc, err := laxml.ParseReader(r, opts...)
	if err != nil {
		return nil, name, fmt.Errorf("unable to parse %s: %w", name, err)
	}
	return doc, name, nil
}

// writeOutput stores the serialized result where the --output flag points,
// stdout by default.
func writeOutput(ctx *cli.Context, data []byte) error {
	name := ctx.String("output")
	if name == "" || name == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", name, err)
	}
	return nil
}
