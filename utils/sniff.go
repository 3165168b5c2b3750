package utils

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/h2non/filetype"
)

// filetype matchers need at most 262 bytes of the input.
const sniffLen = 262

// OpenReader wraps r so that gzip compressed streams are decompressed
// transparently.
func OpenReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("unable to sniff input: %w", err)
	}
	if filetype.Is(header, "gz") {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("unable to open gzip stream: %w", err)
		}
		return zr, nil
	}
	return br, nil
}

// SniffHeader reads up to sniffLen bytes without consuming them and returns
// both the header and a reader positioned at the start of the stream.
func SniffHeader(r io.Reader) ([]byte, io.Reader, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("unable to sniff input: %w", err)
	}
	return header, br, nil
}

// IsGzip reports whether the header bytes start a gzip stream.
func IsGzip(header []byte) bool {
	return filetype.Is(header, "gz")
}

// LooksLikeMarkup reports whether the header bytes resemble an XML or HTML
// document.
func LooksLikeMarkup(header []byte) bool {
	return filetype.Is(header, "markup")
}

func init() {
	// the stock matchers know gzip and zip but not bare markup
	filetype.AddMatcher(
		filetype.NewType("markup", "text/xml"),
		func(buf []byte) bool {
			text := strings.TrimLeft(string(buf), " \t\r\n\uFEFF")
			return strings.HasPrefix(text, "<")
		})
}
