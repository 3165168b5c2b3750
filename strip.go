package laxml

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// Comments matches comment nodes in StripElements, StripTags and XPath
// expressions.
const Comments = "comment()"

// StripAttributes deletes matching attributes from node and all its
// descendants. Names may contain * wildcards and prefix-qualified forms
// ("xlink:href", "xlink:*"); matching is against the attribute's full key.
func StripAttributes(node any, names ...string) error {
	root, err := subject(node)
	if err != nil {
		return err
	}
	patterns, err := compileNamePatterns(names)
	if err != nil {
		return err
	}
	walkElements(root, func(e *etree.Element) {
		var keys []string
		for _, a := range e.Attr {
			if matchesAny(patterns, a.FullKey()) {
				keys = append(keys, a.FullKey())
			}
		}
		for _, k := range keys {
			e.RemoveAttr(k)
		}
	})
	return nil
}

// StripElements removes matching descendant elements together with their
// whole subtrees. When withTail is true the removed element's trailing text
// goes with it. The node itself is never removed, even if its tag matches.
// The Comments sentinel removes comment nodes.
func StripElements(node any, withTail bool, tags ...string) error {
	root, err := subject(node)
	if err != nil {
		return err
	}
	names, comments := splitComments(tags)
	patterns, err := compileNamePatterns(names)
	if err != nil {
		return err
	}
	var doomed []*etree.Element
	walkElements(root, func(e *etree.Element) {
		if e == root {
			return
		}
		if matchesAny(patterns, e.FullTag()) {
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		p := e.Parent()
		if p == nil {
			continue
		}
		if withTail {
			setTail(e, "")
		}
		p.RemoveChild(e)
	}
	if comments {
		removeComments(root)
	}
	return nil
}

// StripTags removes matching descendant elements but keeps their content:
// children and text are spliced into the parent at the element's position,
// while the element's own tag and attributes disappear. The Comments
// sentinel removes comment nodes, text included. The node itself is never
// touched.
func StripTags(node any, tags ...string) error {
	root, err := subject(node)
	if err != nil {
		return err
	}
	names, comments := splitComments(tags)
	patterns, err := compileNamePatterns(names)
	if err != nil {
		return err
	}
	spliceTags(root, patterns)
	if comments {
		removeComments(root)
	}
	return nil
}

func spliceTags(e *etree.Element, patterns []*regexp.Regexp) {
	for i := 0; i < len(e.Child); {
		c, ok := e.Child[i].(*etree.Element)
		if !ok {
			i++
			continue
		}
		spliceTags(c, patterns)
		if !matchesAny(patterns, c.FullTag()) {
			i++
			continue
		}
		e.RemoveChildAt(i)
		for len(c.Child) > 0 {
			t := c.Child[0]
			c.RemoveChildAt(0)
			e.InsertChildAt(i, t)
			i++
		}
	}
}

func removeComments(e *etree.Element) {
	for i := 0; i < len(e.Child); {
		switch c := e.Child[i].(type) {
		case *etree.Comment:
			e.RemoveChildAt(i)
			continue
		case *etree.Element:
			removeComments(c)
		}
		i++
	}
}

func splitComments(tags []string) (names []string, comments bool) {
	for _, t := range tags {
		if t == Comments {
			comments = true
			continue
		}
		names = append(names, t)
	}
	return names, comments
}

func compileNamePatterns(names []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(names))
	for _, name := range names {
		expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(name), `\*`, ".*") + "$"
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("unable to compile name pattern %q: %w", name, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

func matchesAny(patterns []*regexp.Regexp, name string) bool {
	for _, re := range patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
