package laxml

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// IndentOption configures Indent.
type IndentOption func(*indentOptions)

type indentOptions struct {
	space string
	level int
}

// Space sets the whitespace inserted per indentation level, two spaces by
// default.
func Space(space string) IndentOption {
	return func(o *indentOptions) { o.space = space }
}

// Level sets the initial indentation level. A value above zero indents a
// subtree as if it were nested that deep inside a larger document.
func Level(level int) IndentOption {
	return func(o *indentOptions) { o.level = level }
}

// Indent reformats the subtree below node in place by inserting newlines and
// indentation whitespace after elements. The node itself keeps its position;
// existing non-whitespace text is left alone.
func Indent(node any, opts ...IndentOption) error {
	o := indentOptions{space: "  "}
	for _, opt := range opts {
		opt(&o)
	}
	if o.level < 0 {
		return errors.New("laxml: indent level cannot be negative")
	}
	root, err := subject(node)
	if err != nil {
		return err
	}
	indentElement(root, o.space, o.level)
	return nil
}

func indentElement(e *etree.Element, space string, depth int) {
	children := e.ChildElements()
	if len(children) == 0 {
		return
	}
	base := "\n" + strings.Repeat(space, depth)
	inner := base + space
	if strings.TrimSpace(e.Text()) == "" {
		e.SetText(inner)
	}
	for i, c := range children {
		indentElement(c, space, depth+1)
		tail := inner
		if i == len(children)-1 {
			tail = base
		}
		if strings.TrimSpace(tailOf(c)) == "" {
			setTail(c, tail)
		}
	}
}
