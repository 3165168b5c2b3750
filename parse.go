package laxml

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/anglebracket/laxml/soup"
	"github.com/anglebracket/laxml/utils"
)

// Parser controls how raw markup is turned into a tree.
type Parser struct {
	// RemoveComments drops comments from the resulting tree.
	RemoveComments bool
	// RemovePIs drops processing instructions from the resulting tree. The
	// XML declaration is not affected.
	RemovePIs bool
	// Strict bypasses the lenient tokenizer and requires well-formed XML.
	Strict bool
}

// ParserOption configures NewParser.
type ParserOption func(*Parser)

// RemoveComments drops comments during parsing.
func RemoveComments(yes bool) ParserOption {
	return func(p *Parser) { p.RemoveComments = yes }
}

// RemovePIs drops processing instructions during parsing.
func RemovePIs(yes bool) ParserOption {
	return func(p *Parser) { p.RemovePIs = yes }
}

// Strict requires well-formed XML instead of repairing broken markup.
func Strict(yes bool) ParserOption {
	return func(p *Parser) { p.Strict = yes }
}

// NewParser returns a parser with the default settings: lenient parsing,
// comments kept, processing instructions dropped.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{RemovePIs: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) soupOptions() soup.Options {
	return soup.Options{
		RemoveComments: p.RemoveComments,
		RemovePIs:      p.RemovePIs,
	}
}

func (p *Parser) read(r io.Reader) (*etree.Document, error) {
	if !p.Strict {
		return soup.Parse(r, p.soupOptions())
	}
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	p.filter(&doc.Element)
	return doc, nil
}

func (p *Parser) readString(data string) (*etree.Document, error) {
	if !p.Strict {
		return soup.ParseString(data, p.soupOptions())
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	p.filter(&doc.Element)
	return doc, nil
}

// filter removes the comment and processing instruction tokens the parser is
// configured to drop. Strict parsing keeps them all, so they are pruned after
// the fact.
func (p *Parser) filter(e *etree.Element) {
	if !p.RemoveComments && !p.RemovePIs {
		return
	}
	for i := 0; i < len(e.Child); {
		switch c := e.Child[i].(type) {
		case *etree.Comment:
			if p.RemoveComments {
				e.RemoveChildAt(i)
				continue
			}
		case *etree.ProcInst:
			if p.RemovePIs && c.Target != "xml" {
				e.RemoveChildAt(i)
				continue
			}
		case *etree.Element:
			p.filter(c)
		}
		i++
	}
}

// ParseOption configures FromString, Parse and ParseReader.
type ParseOption func(*parseOptions)

type parseOptions struct {
	parser  *Parser
	baseURL string
}

// WithParser selects the parser to use instead of the default one.
func WithParser(p *Parser) ParseOption {
	return func(o *parseOptions) { o.parser = p }
}

// WithBaseURL rewrites relative href attributes in the parsed tree against
// the given base URL.
func WithBaseURL(base string) ParseOption {
	return func(o *parseOptions) { o.baseURL = base }
}

func newParseOptions(opts []ParseOption) parseOptions {
	o := parseOptions{parser: NewParser()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FromString parses a document or fragment from a string and returns its
// root element. Exactly one top level element must result.
func FromString(data string, opts ...ParseOption) (*etree.Element, error) {
	o := newParseOptions(opts)
	doc, err := o.parser.readString(data)
	if err != nil {
		return nil, err
	}
	roots := doc.ChildElements()
	switch {
	case len(roots) == 0:
		return nil, ErrNoRoot
	case len(roots) > 1:
		return nil, fmt.Errorf("%w: %d top level elements", ErrMultipleRoots, len(roots))
	}
	root := roots[0]
	if o.baseURL != "" {
		if err := RelativeToAbsolute(root, o.baseURL); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// Parse loads a document from a file path or an http(s) URL. Gzip compressed
// sources are decompressed transparently; the character set is detected from
// the stream.
func Parse(source string, opts ...ParseOption) (*etree.Document, error) {
	var src io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("unable to fetch %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unable to fetch %s: %s", source, resp.Status)
		}
		src = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("unable to open %s: %w", source, err)
		}
		src = f
	}
	defer src.Close()
	return ParseReader(src, opts...)
}

// ParseReader loads a document from a stream.
func ParseReader(r io.Reader, opts ...ParseOption) (*etree.Document, error) {
	o := newParseOptions(opts)
	in, err := utils.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare input: %w", err)
	}
	doc, err := o.parser.read(in)
	if err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	if o.baseURL != "" {
		if err := RelativeToAbsolute(doc.Root(), o.baseURL); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
