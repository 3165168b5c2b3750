package commands

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/anglebracket/laxml"
	"github.com/anglebracket/laxml/utils"
)

// Strip is "strip" command body.
func Strip(ctx *cli.Context) error {

	const (
		errPrefix = "strip: "
		errCode   = 1
	)

	log := logger(ctx)

	var attrs, elems, tags []string
	for _, a := range ctx.StringSlice("attr") {
		attrs = utils.AppendIfMissing(attrs, a)
	}
	for _, e := range ctx.StringSlice("elem") {
		elems = utils.AppendIfMissing(elems, e)
	}
	for _, t := range ctx.StringSlice("tag") {
		tags = utils.AppendIfMissing(tags, t)
	}
	if ctx.Bool("comments") {
		elems = utils.AppendIfMissing(elems, laxml.Comments)
	}
	if len(attrs)+len(elems)+len(tags) == 0 {
		return cli.Exit(errors.New(errPrefix+"nothing to strip, use --attr, --elem, --tag or --comments"), errCode)
	}

	doc, name, err := loadDocument(ctx, log)
	if err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
	}

	if len(attrs) > 0 {
		if err := laxml.StripAttributes(doc, attrs...); err != nil {
			return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
		}
	}
	if len(elems) > 0 {
		if err := laxml.StripElements(doc, !ctx.Bool("keep-tails"), elems...); err != nil {
			return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
		}
	}
	if len(tags) > 0 {
		if err := laxml.StripTags(doc, tags...); err != nil {
			return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
		}
	}
	log.Debug("Stripped document",
		zap.String("source", name),
		zap.Strings("attrs", attrs),
		zap.Strings("elems", elems),
		zap.Strings("tags", tags),
	)

	out, err := laxml.ToString(doc)
	if err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
	}
	out = append(out, '\n')

	if err := writeOutput(ctx, out); err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
	}
	return nil
}
