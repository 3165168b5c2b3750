package laxml

import (
	"fmt"

	"github.com/antchfx/xpath"
	"github.com/beevik/etree"
)

// nodeNavigator adapts an etree subtree to the antchfx/xpath navigation
// contract. Processing instructions and directives have no XPath node type
// and are skipped during navigation.
type nodeNavigator struct {
	root etree.Token
	cur  etree.Token
	attr int
}

func newNavigator(node any) (*nodeNavigator, error) {
	switch n := node.(type) {
	case *etree.Document:
		if n == nil {
			return nil, ErrNotElement
		}
		return &nodeNavigator{root: &n.Element, cur: &n.Element, attr: -1}, nil
	case *etree.Element:
		if n == nil {
			return nil, ErrNotElement
		}
		return &nodeNavigator{root: n, cur: n, attr: -1}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotElement, node)
}

// navigable reports whether a token is visible to queries.
func navigable(t etree.Token) bool {
	switch t.(type) {
	case *etree.Element, *etree.CharData, *etree.Comment:
		return true
	}
	return false
}

func (nav *nodeNavigator) NodeType() xpath.NodeType {
	if nav.attr >= 0 {
		return xpath.AttributeNode
	}
	if nav.cur == nav.root {
		return xpath.RootNode
	}
	switch nav.cur.(type) {
	case *etree.Element:
		return xpath.ElementNode
	case *etree.CharData:
		return xpath.TextNode
	}
	return xpath.CommentNode
}

func (nav *nodeNavigator) LocalName() string {
	e, ok := nav.cur.(*etree.Element)
	if !ok {
		return ""
	}
	if nav.attr >= 0 {
		return e.Attr[nav.attr].Key
	}
	if nav.cur == nav.root {
		return ""
	}
	return e.Tag
}

func (nav *nodeNavigator) Prefix() string {
	e, ok := nav.cur.(*etree.Element)
	if !ok {
		return ""
	}
	if nav.attr >= 0 {
		return e.Attr[nav.attr].Space
	}
	if nav.cur == nav.root {
		return ""
	}
	return e.Space
}

func (nav *nodeNavigator) Value() string {
	if nav.attr >= 0 {
		return nav.cur.(*etree.Element).Attr[nav.attr].Value
	}
	if e, ok := nav.cur.(*etree.Element); ok {
		return textContent(e)
	}
	return tokenValue(nav.cur)
}

func (nav *nodeNavigator) Copy() xpath.NodeNavigator {
	c := *nav
	return &c
}

func (nav *nodeNavigator) MoveToRoot() {
	nav.cur = nav.root
	nav.attr = -1
}

func (nav *nodeNavigator) MoveToParent() bool {
	if nav.attr >= 0 {
		nav.attr = -1
		return true
	}
	if nav.cur == nav.root {
		return false
	}
	p := nav.cur.Parent()
	if p == nil {
		return false
	}
	nav.cur = p
	return true
}

func (nav *nodeNavigator) MoveToNextAttribute() bool {
	e, ok := nav.cur.(*etree.Element)
	if !ok || nav.cur == nav.root {
		return false
	}
	if nav.attr+1 >= len(e.Attr) {
		return false
	}
	nav.attr++
	return true
}

func (nav *nodeNavigator) MoveToChild() bool {
	if nav.attr >= 0 {
		return false
	}
	e, ok := nav.cur.(*etree.Element)
	if !ok {
		return false
	}
	for _, c := range e.Child {
		if navigable(c) {
			nav.cur = c
			return true
		}
	}
	return false
}

func (nav *nodeNavigator) MoveToFirst() bool {
	if nav.attr >= 0 || nav.cur == nav.root {
		return false
	}
	p := nav.cur.Parent()
	if p == nil {
		return false
	}
	for _, c := range p.Child {
		if navigable(c) {
			nav.cur = c
			return true
		}
	}
	return false
}

func (nav *nodeNavigator) MoveToNext() bool {
	if nav.attr >= 0 || nav.cur == nav.root {
		return false
	}
	p := nav.cur.Parent()
	if p == nil {
		return false
	}
	for i := nav.cur.Index() + 1; i < len(p.Child); i++ {
		if navigable(p.Child[i]) {
			nav.cur = p.Child[i]
			return true
		}
	}
	return false
}

func (nav *nodeNavigator) MoveToPrevious() bool {
	if nav.attr >= 0 || nav.cur == nav.root {
		return false
	}
	p := nav.cur.Parent()
	if p == nil {
		return false
	}
	for i := nav.cur.Index() - 1; i >= 0; i-- {
		if navigable(p.Child[i]) {
			nav.cur = p.Child[i]
			return true
		}
	}
	return false
}

func (nav *nodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*nodeNavigator)
	if !ok || o.root != nav.root {
		return false
	}
	nav.cur, nav.attr = o.cur, o.attr
	return true
}
