package laxml

import (
	"sort"

	"github.com/beevik/etree"
)

// ElementOption configures the Element and SubElement factories.
type ElementOption func(*elementOptions)

type elementOptions struct {
	attrs map[string]string
	nsmap map[string]string
}

// Attrs sets initial attributes on the created element. Keys are applied in
// sorted order so serialization is deterministic.
func Attrs(attrs map[string]string) ElementOption {
	return func(o *elementOptions) { o.attrs = attrs }
}

// NSMap declares namespace prefixes on the created element. Every entry
// becomes an xmlns declaration; the empty prefix declares the default
// namespace.
func NSMap(nsmap map[string]string) ElementOption {
	return func(o *elementOptions) { o.nsmap = nsmap }
}

// Element creates a free-standing element. The tag may carry a namespace
// prefix ("ns:tag").
func Element(tag string, opts ...ElementOption) *etree.Element {
	var o elementOptions
	for _, opt := range opts {
		opt(&o)
	}
	e := etree.NewElement(tag)
	for _, prefix := range sortedKeys(o.nsmap) {
		if prefix == "" {
			e.CreateAttr("xmlns", o.nsmap[prefix])
		} else {
			e.CreateAttr("xmlns:"+prefix, o.nsmap[prefix])
		}
	}
	for _, k := range sortedKeys(o.attrs) {
		e.CreateAttr(k, o.attrs[k])
	}
	return e
}

// SubElement creates an element and appends it to parent.
func SubElement(parent *etree.Element, tag string, opts ...ElementOption) *etree.Element {
	e := Element(tag, opts...)
	parent.AddChild(e)
	return e
}

// ElementTree wraps an element into a document of its own.
func ElementTree(root *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.SetRoot(root)
	return doc
}

// Comment creates a free-standing comment token.
func Comment(text string) *etree.Comment {
	return etree.NewComment(text)
}

// IsElement reports whether v is a usable element.
func IsElement(v any) bool {
	e, ok := v.(*etree.Element)
	return ok && e != nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
