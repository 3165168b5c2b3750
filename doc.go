/*
Package laxml is a convenience layer over an XML element tree that accepts
the kind of markup real documents actually contain.

All tree nodes are owned by github.com/beevik/etree - this package never
introduces node types of its own. What it adds on top is a familiar set of
entry points (FromString, Parse, Element, SubElement, ToString, Indent,
StripAttributes, StripElements, StripTags, XPath) and a lenient parsing mode
that rebuilds broken markup into a well-formed tree using the HTML tokenizer
from golang.org/x/net/html before handing it to etree.

XPath queries are evaluated by github.com/antchfx/xpath through a small
navigator over etree tokens, so comments and text nodes are addressable the
same way elements are.
*/
package laxml
