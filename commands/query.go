package commands

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/anglebracket/laxml"
)

// Query is "query" command body.
func Query(ctx *cli.Context) error {

	const (
		errPrefix = "query: "
		errCode   = 1
	)

	log := logger(ctx)

	xp, err := laxml.CompileXPath(ctx.String("xpath"))
	if err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
	}

	doc, name, err := loadDocument(ctx, log)
	if err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
	}

	var buf bytes.Buffer
	if ctx.Bool("values") {
		values, err := xp.Values(doc)
		if err != nil {
			return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
		}
		for _, v := range values {
			buf.WriteString(v)
			buf.WriteByte('\n')
		}
		log.Debug("Query finished", zap.String("source", name), zap.Int("matches", len(values)))
	} else {
		result, err := xp.Evaluate(doc)
		if err != nil {
			return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
		}
		if err := renderResult(&buf, result); err != nil {
			return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
		}
		log.Debug("Query finished", zap.String("source", name))
	}

	if err := writeOutput(ctx, buf.Bytes()); err != nil {
		return cli.Exit(fmt.Errorf(errPrefix+"%w", err), errCode)
	}
	return nil
}

func renderResult(buf *bytes.Buffer, result any) error {
	switch v := result.(type) {
	case []etree.Token:
		for _, t := range v {
			if err := renderToken(buf, t); err != nil {
				return err
			}
			buf.WriteByte('\n')
		}
	case float64:
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		buf.WriteByte('\n')
	case string:
		buf.WriteString(v)
		buf.WriteByte('\n')
	case bool:
		buf.WriteString(strconv.FormatBool(v))
		buf.WriteByte('\n')
	}
	return nil
}

func renderToken(buf *bytes.Buffer, t etree.Token) error {
	switch v := t.(type) {
	case *etree.Element:
		out, err := laxml.ToString(v)
		if err != nil {
			return err
		}
		buf.Write(out)
	case *etree.Comment:
		buf.WriteString("<!--" + v.Data + "-->")
	case *etree.CharData:
		buf.WriteString(v.Data)
	case *etree.ProcInst:
		buf.WriteString("<?" + v.Target + " " + v.Inst + "?>")
	}
	return nil
}
