package laxml

import (
	"fmt"
	"net/url"

	"github.com/beevik/etree"
)

// RelativeToAbsolute rewrites relative href attributes in the subtree rooted
// at root against the given base URL.
func RelativeToAbsolute(root *etree.Element, base string) error {
	bu, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("unable to parse base URL %q: %w", base, err)
	}
	var bad error
	walkElements(root, func(e *etree.Element) {
		if bad != nil {
			return
		}
		href := e.SelectAttrValue("href", "")
		if href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			bad = fmt.Errorf("unable to parse href %q: %w", href, err)
			return
		}
		e.CreateAttr("href", bu.ResolveReference(ref).String())
	})
	return bad
}
