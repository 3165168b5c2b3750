package utils

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestOpenReaderPlain(t *testing.T) {
	r, err := OpenReader(strings.NewReader("<root/>"))
	require.NoError(t, err)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "<root/>", string(data))
}

func TestOpenReaderGzip(t *testing.T) {
	r, err := OpenReader(bytes.NewReader(gzipped(t, "<root/>")))
	require.NoError(t, err)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "<root/>", string(data))
}

func TestSniffHeader(t *testing.T) {
	header, r, err := SniffHeader(strings.NewReader("<root/>"))
	require.NoError(t, err)
	require.Equal(t, "<root/>", string(header))

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "<root/>", string(data))
}

func TestIsGzip(t *testing.T) {
	require.True(t, IsGzip(gzipped(t, "<root/>")))
	require.False(t, IsGzip([]byte("<root/>")))
}

func TestLooksLikeMarkup(t *testing.T) {
	require.True(t, LooksLikeMarkup([]byte("<root/>")))
	require.True(t, LooksLikeMarkup([]byte("\n  <?xml version=\"1.0\"?>")))
	require.True(t, LooksLikeMarkup([]byte("\uFEFF<root/>")))
	require.False(t, LooksLikeMarkup([]byte("plain text")))
	require.False(t, LooksLikeMarkup(gzipped(t, "<root/>")))
}
