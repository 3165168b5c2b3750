package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/anglebracket/laxml"
	"github.com/anglebracket/laxml/utils"
)

// Format is "fmt" command body.
func Format(ctx *cli.Context) error {

	const (
		errPrefix = "fmt: "
		errCode   = 1
	)

	log := logger(ctx)

	style := ctx.String("style")
	if !utils.IsOneOf(style, []string{"spaces", "tabs"}) {
		return cli.Exit(errors.New(errPrefix+"style must be one of: spaces, tabs"), errCode)
	}
	width := ctx.Int("width")
	if width < 0 {
		return cli.Exit(errors.New(errPrefix+"width cannot be negative"), errCode)
	}
	space := strings.Repeat(" ", width)
	if style == "tabs" {
		space = "\t"
	}

	start := time.Now()
	doc, name, err := loadDocument(ctx, log)
	if err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
	}
	log.Debug("Parsed input",
		zap.String("source", name),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := laxml.Indent(doc, laxml.Space(space)); err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"unable to indent document: %w", err), errCode)
	}
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
