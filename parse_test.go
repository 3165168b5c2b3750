package laxml_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/anglebracket/laxml"
)

func TestFromString(t *testing.T) {
	root, err := laxml.FromString(`<root><child>text</child></root>`)
	require.NoError(t, err)
	require.Equal(t, "root", root.Tag)
	require.Equal(t, "text", root.SelectElement("child").Text())
}

func TestFromStringRecovery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"well formed", `<root><child>text</child></root>`, `<root><child>text</child></root>`},
		{"mixed case", `<Root><Child>x</Child></Root>`, `<Root><Child>x</Child></Root>`},
		{"unclosed tags", `<root><a><b>x</root>`, `<root><a><b>x</b></a></root>`},
		{"stray end tag", `<root></b>x</root>`, `<root>x</root>`},
		{"self closing", `<r><sub/></r>`, `<r><sub/></r>`},
		{"bare ampersand", `<r>a & b</r>`, `<r>a &amp; b</r>`},
		{"comment kept", `<r><!-- c --></r>`, `<r><!-- c --></r>`},
		{"mismatched case closes", `<Root>x</root>`, `<Root>x</Root>`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root, err := laxml.FromString(tc.in)
			require.NoError(t, err)
			out, err := laxml.ToString(root)
			require.NoError(t, err)
			require.Equal(t, tc.want, string(out))
		})
	}
}

func TestFromStringRootErrors(t *testing.T) {
	_, err := laxml.FromString(`<a/><b/>`)
	require.ErrorIs(t, err, laxml.ErrMultipleRoots)

	_, err = laxml.FromString(`just text, no markup`)
	require.ErrorIs(t, err, laxml.ErrNoRoot)

	_, err = laxml.FromString(``)
	require.ErrorIs(t, err, laxml.ErrNoRoot)
}

func TestFromStringStrict(t *testing.T) {
	strict := laxml.WithParser(laxml.NewParser(laxml.Strict(true)))

	root, err := laxml.FromString(`<root><child>text</child></root>`, strict)
	require.NoError(t, err)
	require.Equal(t, "root", root.Tag)

	_, err = laxml.FromString(`<root><child></root>`, strict)
	require.Error(t, err)
}

func TestFromStringBaseURL(t *testing.T) {
	root, err := laxml.FromString(
		`<r><a href="one/two.html">x</a><b href="http://other/abs">y</b></r>`,
		laxml.WithBaseURL("http://example.com/base/"))
	require.NoError(t, err)
	require.Equal(t, "http://example.com/base/one/two.html",
		root.SelectElement("a").SelectAttrValue("href", ""))
	require.Equal(t, "http://other/abs",
		root.SelectElement("b").SelectAttrValue("href", ""))
}

func procInsts(doc *etree.Document) []*etree.ProcInst {
	var out []*etree.ProcInst
	for _, c := range doc.Child {
		if pi, ok := c.(*etree.ProcInst); ok {
			out = append(out, pi)
		}
	}
	return out
}

func TestParseReaderPIs(t *testing.T) {
	in := `<?xml version="1.0"?><?xml-stylesheet href="a.css"?><r/>`

	// by default only the xml declaration survives
	doc, err := laxml.ParseReader(strings.NewReader(in))
	require.NoError(t, err)
	pis := procInsts(doc)
	require.Len(t, pis, 1)
	require.Equal(t, "xml", pis[0].Target)

	doc, err = laxml.ParseReader(strings.NewReader(in),
		laxml.WithParser(laxml.NewParser(laxml.RemovePIs(false))))
	require.NoError(t, err)
	pis = procInsts(doc)
	require.Len(t, pis, 2)
	require.Equal(t, "xml-stylesheet", pis[1].Target)
}

func TestParseModesAgreeOnDeclaration(t *testing.T) {
	in := `<?xml version="1.0"?><r/>`

	for _, strict := range []bool{false, true} {
		doc, err := laxml.ParseReader(strings.NewReader(in),
			laxml.WithParser(laxml.NewParser(laxml.Strict(strict))))
		require.NoError(t, err)

		out, err := laxml.ToString(doc)
		require.NoError(t, err)
		require.Equal(t, in, string(out), "strict=%v", strict)
	}
}

func TestParseReaderRemoveComments(t *testing.T) {
	doc, err := laxml.ParseReader(strings.NewReader(`<r><!-- c -->x</r>`),
		laxml.WithParser(laxml.NewParser(laxml.RemoveComments(true))))
	require.NoError(t, err)
	out, err := laxml.ToString(doc)
	require.NoError(t, err)
	require.Equal(t, `<r>x</r>`, string(out))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<root><child>text</child></root>`), 0644))

	doc, err := laxml.Parse(path)
	require.NoError(t, err)
	require.Equal(t, "root", doc.Root().Tag)

	_, err = laxml.Parse(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
}

func TestParseGzipFile(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`<root><child>text</child></root>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "doc.xml.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	doc, err := laxml.Parse(path)
	require.NoError(t, err)
	require.Equal(t, "text", doc.Root().SelectElement("child").Text())
}
