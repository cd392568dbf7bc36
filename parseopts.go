package eqsolve

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	depthopt int
	eofopt   struct{}
)

// DefaultMaxDepth is the maximum nesting depth of parentheses when no MaxDepth
// option is given.
const DefaultMaxDepth = 256

// parsectx holds general data for parsing.
type parsectx struct {
	// maxDepth is the maximum nesting depth of parentheses.
	maxDepth int
	// closeEOF indicates that open parentheses are closed at the end of the
	// input instead of being an error.
	closeEOF bool
	// eof is the column just past the last rune of the input.
	eof int
}

// MaxDepth limits the nesting depth of parentheses. Parsing an expression
// with deeper nesting fails with a *DepthError. Panics if n is not positive.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("eqsolve: invalid max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxDepth = int(o)
	return p
}

// CloseAtEOF tells the parser to close any parentheses still open at the end
// of the input, so that "2*(3+4" parses as "2*(3+4)". Without this option,
// an unclosed parenthesis is a *BracketError.
func CloseAtEOF() ParseOption {
	return eofopt{}
}

func (eofopt) parseOption(p parsectx) parsectx {
	p.closeEOF = true
	return p
}
