/*
Package soup rebuilds arbitrarily broken markup into a well-formed element
tree.

The HTML tokenizer from golang.org/x/net/html supplies the error tolerance:
unclosed and mismatched tags, stray end tags, bare ampersands and unquoted
attribute values all tokenize cleanly. The token stream is then replayed
into an etree.Document through an open-element stack, so the result is a
regular tree no matter how damaged the input was.

The tokenizer folds tag names to lower case. To keep the case of the input,
tag names are swapped for synthetic placeholders before tokenizing and the
original spelling is restored while the tree is built. Attribute-name case
is not recoverable this way and stays folded.
*/
package soup

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Options control which token kinds make it into the tree.
type Options struct {
	// RemoveComments drops comment tokens.
	RemoveComments bool
	// RemovePIs drops processing instructions. The xml declaration is kept
	// either way.
	RemovePIs bool
	// ContentType, when known, helps charset detection
	// ("text/xml; charset=iso-8859-1"). Leave empty to sniff.
	ContentType string
}

var tagName = regexp.MustCompile(`(</?)([a-zA-Z_][\w.:-]*)`)

// Parse reads markup from r and returns the rebuilt document. The character
// set is detected from the stream before tokenizing.
func Parse(r io.Reader, o Options) (*etree.Document, error) {
	cr, err := charset.NewReader(r, o.ContentType)
	if err != nil {
		return nil, fmt.Errorf("unable to set up charset conversion: %w", err)
	}
	raw, err := io.ReadAll(cr)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}
	return ParseString(string(raw), o)
}

// ParseString rebuilds a document from an already decoded string.
func ParseString(data string, o Options) (*etree.Document, error) {
	masked, names := maskTagNames(data)
	return rebuild(strings.NewReader(masked), names, o)
}

// maskTagNames replaces every tag name with a case-stable placeholder and
// returns the mapping back to the original spellings.
func maskTagNames(s string) (string, map[string]string) {
	forward := make(map[string]string)
	backward := make(map[string]string)
	masked := tagName.ReplaceAllStringFunc(s, func(m string) string {
		prefix, name := "<", m[1:]
		if strings.HasPrefix(m, "</") {
			prefix, name = "</", m[2:]
		}
		ph, ok := forward[name]
		if !ok {
			ph = fmt.Sprintf("lx%d", len(forward))
			forward[name] = ph
			backward[ph] = name
		}
		return prefix + ph
	})
	return masked, backward
}

func restore(names map[string]string, name string) string {
	if orig, ok := names[name]; ok {
		return orig
	}
	return name
}

// restoreInline undoes masking that leaked into non-tag positions, such as
// angle brackets inside quoted attribute values or comment bodies.
func restoreInline(names map[string]string, s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return tagName.ReplaceAllStringFunc(s, func(m string) string {
		prefix, name := "<", m[1:]
		if strings.HasPrefix(m, "</") {
			prefix, name = "</", m[2:]
		}
		return prefix + restore(names, name)
	})
}

func rebuild(r io.Reader, names map[string]string, o Options) (*etree.Document, error) {
	doc := etree.NewDocument()
	stack := []*etree.Element{&doc.Element}
	top := func() *etree.Element { return stack[len(stack)-1] }

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("unable to tokenize input: %w", err)
			}
			// open elements at EOF are closed implicitly
			return doc, nil

		case html.TextToken:
			if data := restoreInline(names, string(z.Text())); data != "" {
				top().AddChild(etree.NewText(data))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			raw, hasAttr := z.TagName()
			e := top().CreateElement(restore(names, string(raw)))
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				e.CreateAttr(string(k), restoreInline(names, string(v)))
			}
			if tt == html.StartTagToken {
				stack = append(stack, e)
			}

		case html.EndTagToken:
			raw, _ := z.TagName()
			name := restore(names, string(raw))
			// pop to the nearest matching open element, ignore stray end tags
			for i := len(stack) - 1; i > 0; i-- {
				if strings.EqualFold(stack[i].FullTag(), name) {
					stack = stack[:i]
					break
				}
			}

		case html.CommentToken:
			data := restoreInline(names, string(z.Text()))
			switch {
			case strings.HasPrefix(data, "?"):
				// a processing instruction mangled into a bogus comment;
				// the xml declaration is kept no matter what
				target, inst := splitPI(strings.Trim(data, "?"))
				if target == "xml" || !o.RemovePIs {
					top().CreateProcInst(target, inst)
				}
			case strings.HasPrefix(data, "[CDATA[") && strings.HasSuffix(data, "]]"):
				top().CreateCData(strings.TrimSuffix(strings.TrimPrefix(data, "[CDATA["), "]]"))
			default:
				if !o.RemoveComments {
					top().CreateComment(data)
				}
			}

		case html.DoctypeToken:
			top().CreateDirective("DOCTYPE " + restoreInline(names, string(z.Text())))
		}
	}
}

// splitPI splits "target data" out of a processing instruction body.
func splitPI(body string) (string, string) {
	body = strings.TrimSpace(body)
	if i := strings.IndexAny(body, " \t\r\n"); i >= 0 {
		return body[:i], strings.TrimSpace(body[i+1:])
	}
	return body, ""
}
