package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/anglebracket/laxml"
)

// Rebase is "rebase" command body.
func Rebase(ctx *cli.Context) error {

	const (
		errPrefix = "rebase: "
		errCode   = 1
	)

	log := logger(ctx)

	base := ctx.String("base")
	doc, name, err := loadDocument(ctx, log, laxml.WithBaseURL(base))
	if err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
	}
	log.Debug("Rebased hrefs", zap.String("source", name), zap.String("base", base))

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
