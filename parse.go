package eqsolve

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses an equation into a syntax tree. The result is always a group.
// Whitespace is removed before parsing, so columns in errors count only
// non-space runes. The given options are applied in order.
func Parse(src string, opts ...ParseOption) (*Node, error) {
	src = strings.Map(stripSpace, src)
	p := parsectx{
		maxDepth: DefaultMaxDepth,
		eof:      utf8.RuneCountInString(src) + 1,
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	toks, err := lex(strings.NewReader(src)).all()
	if err != nil {
		return nil, err
	}
	kids, err := nest(toks, &p)
	if err != nil {
		return nil, err
	}
	return Resolve(&Node{Kind: NodeGroup, Pos: 1, Children: kids}), nil
}

// ParseReader reads all of src and parses it as a single equation.
func ParseReader(src io.Reader, opts ...ParseOption) (*Node, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return Parse(string(b), opts...)
}

func stripSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}
