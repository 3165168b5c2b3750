package laxml

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// WriteOption configures ToString and ToStringList.
type WriteOption func(*writeOptions)

type writeOptions struct {
	pretty bool
	decl   bool
}

// PrettyPrint indents the serialized output with two spaces per level.
func PrettyPrint() WriteOption {
	return func(o *writeOptions) { o.pretty = true }
}

// WithDeclaration prepends the XML declaration when the document does not
// already carry one.
func WithDeclaration() WriteOption {
	return func(o *writeOptions) { o.decl = true }
}

// ToString serializes an element or a document. The input is not modified;
// pretty printing happens on a copy.
func ToString(node any, opts ...WriteOption) ([]byte, error) {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}
	doc, err := serializable(node)
	if err != nil {
		return nil, err
	}
	if o.pretty {
		if err := Indent(doc); err != nil {
			return nil, err
		}
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("unable to serialize document: %w", err)
	}
	if o.decl && !bytes.HasPrefix(out, []byte("<?xml")) {
		out = append([]byte(xmlDeclaration), out...)
	}
	return out, nil
}

// ToStringList is a compatibility veneer over ToString: the serialized
// document wrapped in a single-entry slice.
func ToStringList(node any, opts ...WriteOption) ([][]byte, error) {
	b, err := ToString(node, opts...)
	if err != nil {
		return nil, err
	}
	return [][]byte{b}, nil
}

// serializable returns a document copy that is safe to mutate while
// serializing. An element is wrapped together with its tail text.
func serializable(node any) (*etree.Document, error) {
	switch n := node.(type) {
	case *etree.Document:
		if n == nil {
			return nil, ErrNotElement
		}
		return n.Copy(), nil
	case *etree.Element:
		if n == nil {
			return nil, ErrNotElement
		}
		doc := etree.NewDocument()
		doc.SetRoot(n.Copy())
		if tail := tailOf(n); tail != "" {
			doc.AddChild(etree.NewText(tail))
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotElement, node)
}

// Fdump pretty-prints node to w with a trailing newline.
func Fdump(w io.Writer, node any) error {
	out, err := ToString(node, PrettyPrint())
	if err != nil {
		return err
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	_, err = w.Write(out)
	return err
}

// Dump writes node to stdout. This should be used for debugging only.
func Dump(node any) {
	_ = Fdump(os.Stdout, node)
}
