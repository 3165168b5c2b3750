package laxml

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// subject resolves a tree argument to the element an operation applies to.
// For a document that is its root element.
func subject(node any) (*etree.Element, error) {
	switch n := node.(type) {
	case *etree.Element:
		if n == nil {
			return nil, ErrNotElement
		}
		return n, nil
	case *etree.Document:
		if n == nil {
			return nil, ErrNotElement
		}
		if root := n.Root(); root != nil {
			return root, nil
		}
		return nil, ErrNoRoot
	}
	return nil, fmt.Errorf("%w: %T", ErrNotElement, node)
}

// walkElements visits e and every element below it, in document order.
func walkElements(e *etree.Element, fn func(*etree.Element)) {
	fn(e)
	for _, c := range e.ChildElements() {
		walkElements(c, fn)
	}
}

// tailOf returns the character data immediately following el in its parent.
func tailOf(el *etree.Element) string {
	p := el.Parent()
	if p == nil {
		return ""
	}
	var b strings.Builder
	for i := el.Index() + 1; i < len(p.Child); i++ {
		cd, ok := p.Child[i].(*etree.CharData)
		if !ok {
			break
		}
		b.WriteString(cd.Data)
	}
	return b.String()
}

// setTail replaces the character data immediately following el in its parent.
func setTail(el *etree.Element, tail string) {
	p := el.Parent()
	if p == nil {
		return
	}
	i := el.Index() + 1
	for i < len(p.Child) {
		if _, ok := p.Child[i].(*etree.CharData); !ok {
			break
		}
		p.RemoveChildAt(i)
	}
	if tail != "" {
		p.InsertChildAt(i, etree.NewText(tail))
	}
}

// textContent concatenates all character data below e, in document order.
func textContent(e *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, c := range e.Child {
			switch t := c.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(e)
	return b.String()
}

// tokenValue is the XPath string value of a single token.
func tokenValue(t etree.Token) string {
	switch v := t.(type) {
	case *etree.Element:
		return textContent(v)
	case *etree.CharData:
		return v.Data
	case *etree.Comment:
		return v.Data
	case *etree.ProcInst:
		return v.Inst
	}
	return ""
}
