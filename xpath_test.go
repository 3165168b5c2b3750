package laxml_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/anglebracket/laxml"
)

const libraryXML = `<library>` +
	`<!-- catalog -->` +
	`<book id="1"><title>A</title></book>` +
	`<book id="2"><title>B</title></book>` +
	`</library>`

func libraryRoot(t *testing.T) *etree.Element {
	t.Helper()
	root, err := laxml.FromString(libraryXML)
	require.NoError(t, err)
	return root
}

func TestXPathSelect(t *testing.T) {
	root := libraryRoot(t)

	tokens, err := laxml.MustCompileXPath("//book").Select(root)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	for _, tok := range tokens {
		e, ok := tok.(*etree.Element)
		require.True(t, ok)
		require.Equal(t, "book", e.Tag)
	}

	tokens, err = laxml.MustCompileXPath("//book[@id='2']/title").Select(root)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, "B", tokens[0].(*etree.Element).Text())
}

func TestXPathSelectComments(t *testing.T) {
	root := libraryRoot(t)

	tokens, err := laxml.MustCompileXPath("//comment()").Select(root)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	c, ok := tokens[0].(*etree.Comment)
	require.True(t, ok)
	require.Equal(t, " catalog ", c.Data)
}

func TestXPathSelectText(t *testing.T) {
	root := libraryRoot(t)

	tokens, err := laxml.MustCompileXPath("book[1]/title/text()").Select(root)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	cd, ok := tokens[0].(*etree.CharData)
	require.True(t, ok)
	require.Equal(t, "A", cd.Data)
}

func TestXPathSelectNonNodes(t *testing.T) {
	root := libraryRoot(t)

	_, err := laxml.MustCompileXPath("count(//book)").Select(root)
	require.Error(t, err)
}

func TestXPathEvaluateScalars(t *testing.T) {
	root := libraryRoot(t)

	v, err := laxml.MustCompileXPath("count(//book)").Evaluate(root)
	require.NoError(t, err)
	require.Equal(t, float64(2), v)

	v, err = laxml.MustCompileXPath("string(//book[1]/title)").Evaluate(root)
	require.NoError(t, err)
	require.Equal(t, "A", v)

	v, err = laxml.MustCompileXPath("boolean(//book[@id='3'])").Evaluate(root)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestXPathValues(t *testing.T) {
	root := libraryRoot(t)

	vals, err := laxml.MustCompileXPath("//@id").Values(root)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, vals)

	vals, err = laxml.MustCompileXPath("//book[@id='2']/title").Values(root)
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, vals)

	vals, err = laxml.MustCompileXPath("count(//book)").Values(root)
	require.NoError(t, err)
	require.Equal(t, []string{"2"}, vals)
}

func TestXPathOnDocument(t *testing.T) {
	doc, err := laxml.ParseReader(strings.NewReader(libraryXML))
	require.NoError(t, err)

	tokens, err := laxml.MustCompileXPath("/library/book").Select(doc)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
}

func TestXPathCannotEscapeSubtree(t *testing.T) {
	root := libraryRoot(t)
	first := root.SelectElement("book")

	tokens, err := laxml.MustCompileXPath("//title").Select(first)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, "A", tokens[0].(*etree.Element).Text())
}

func TestCompileXPathError(t *testing.T) {
	_, err := laxml.CompileXPath("//[")
	require.Error(t, err)

	x, err := laxml.CompileXPath("//book")
	require.NoError(t, err)
	require.Equal(t, "//book", x.String())
}
