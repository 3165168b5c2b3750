package laxml

import (
	"errors"
)

// ErrNotElement - the value passed for a tree argument is neither an
// *etree.Element nor an *etree.Document.
var ErrNotElement = errors.New("laxml: not an element or document")

// ErrNoRoot - parsing produced no root element.
var ErrNoRoot = errors.New("laxml: document has no root element")

// ErrMultipleRoots - parsing a fragment produced more than one top level
// element.
var ErrMultipleRoots = errors.New("laxml: document has multiple root elements")
