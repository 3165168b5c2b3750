package laxml

import (
	"fmt"
	"strconv"

	"github.com/antchfx/xpath"
	"github.com/beevik/etree"
)

// XPath is a compiled query that can be applied repeatedly to different
// trees. The element (or document) a query is applied to acts as the
// document root; queries cannot escape it.
type XPath struct {
	expr *xpath.Expr
	src  string
}

// CompileXPath compiles an XPath expression.
func CompileXPath(expr string) (*XPath, error) {
	e, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("unable to compile xpath %q: %w", expr, err)
	}
	return &XPath{expr: e, src: expr}, nil
}

// MustCompileXPath is CompileXPath that panics on error.
func MustCompileXPath(expr string) *XPath {
	x, err := CompileXPath(expr)
	if err != nil {
		panic(err)
	}
	return x
}

func (x *XPath) String() string { return x.src }

// Evaluate returns the raw result of the query below node: float64, string,
// bool, or []etree.Token for node sets. Attribute matches have no token
// representation and are dropped from node sets; use Values for those.
func (x *XPath) Evaluate(node any) (any, error) {
	nav, err := newNavigator(node)
	if err != nil {
		return nil, err
	}
	switch v := x.expr.Evaluate(nav).(type) {
	case *xpath.NodeIterator:
		var out []etree.Token
		for v.MoveNext() {
			if n, ok := v.Current().(*nodeNavigator); ok && n.attr < 0 {
				out = append(out, n.cur)
			}
		}
		return out, nil
	default:
		return v, nil
	}
}

// Select returns the tokens matched by the query below node. The query must
// select nodes.
func (x *XPath) Select(node any) ([]etree.Token, error) {
	v, err := x.Evaluate(node)
	if err != nil {
		return nil, err
	}
	tokens, ok := v.([]etree.Token)
	if !ok {
		return nil, fmt.Errorf("laxml: xpath %q does not select nodes", x.src)
	}
	return tokens, nil
}

// Values returns the string values of the query matches. Scalar results come
// back as a single formatted entry.
func (x *XPath) Values(node any) ([]string, error) {
	nav, err := newNavigator(node)
	if err != nil {
		return nil, err
	}
	switch v := x.expr.Evaluate(nav).(type) {
	case *xpath.NodeIterator:
		var out []string
		for v.MoveNext() {
			out = append(out, v.Current().Value())
		}
		return out, nil
	case string:
		return []string{v}, nil
	case float64:
		return []string{strconv.FormatFloat(v, 'g', -1, 64)}, nil
	case bool:
		return []string{strconv.FormatBool(v)}, nil
	}
	return nil, nil
}
