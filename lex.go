package eqsolve

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	op   Op
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// operand returns whether t ends an operand, i.e. whether an operator may
// follow it. A nil token is the start of the input, which is not an operand.
func (t *lexToken) operand() bool {
	return t != nil && (t.kind == tokenNum || t.kind == tokenClose)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a number, possibly with a leading minus sign.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// all scans the entire input.
func (l *lexer) all() ([]lexToken, error) {
	var toks []lexToken
	for {
		var err error
		toks, err = l.next(toks)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
	}
}

// next scans the next token from the input and appends it to toks, which holds
// every token scanned so far. The last element of toks decides whether a minus
// is a sign or a subtraction and whether an open parenthesis implies a
// multiplication. A decimal separator replaces the last element instead of
// appending. At the end of input, the result is toks with io.EOF.
func (l *lexer) next(toks []lexToken) ([]lexToken, error) {
	var prev *lexToken
	if len(toks) > 0 {
		prev = &toks[len(toks)-1]
	}
	defer l.buf.Reset()
	pos := l.rune
	r, err := l.readRune()
	if err != nil {
		return toks, err
	}
	switch {
	case r == '(':
		// 2(x) -> 2*(x), (x)(y) -> (x)*(y)
		if prev.operand() {
			toks = append(toks, lexToken{text: "*", kind: tokenOp, op: OpMul, pos: pos})
		}
		return append(toks, lexToken{text: "(", kind: tokenOpen, pos: pos}), nil
	case r == ')':
		return append(toks, lexToken{text: ")", kind: tokenClose, pos: pos}), nil
	case r == '-' && !prev.operand():
		// Nothing to subtract from, so this is the sign of a number.
		l.buf.WriteRune(r)
		if err := l.scanDigits(); err != nil {
			return toks, err
		}
		return append(toks, lexToken{text: l.buf.String(), kind: tokenNum, pos: pos}), nil
	case r == '.', r == ',':
		if prev == nil || prev.kind != tokenNum {
			l.buf.WriteRune(r)
			return toks, l.error("number", pos)
		}
		l.buf.WriteString(prev.text)
		l.buf.WriteByte('.')
		if err := l.scanDigits(); err != nil {
			return toks, err
		}
		toks[len(toks)-1] = lexToken{text: l.buf.String(), kind: tokenNum, pos: prev.pos}
		return toks, nil
	case '0' <= r && r <= '9':
		l.unreadRune()
		if err := l.scanDigits(); err != nil {
			return toks, err
		}
		return append(toks, lexToken{text: l.buf.String(), kind: tokenNum, pos: pos}), nil
	default:
		if op := opOf(r); op != OpNone {
			return append(toks, lexToken{text: string(r), kind: tokenOp, op: op, pos: pos}), nil
		}
		// Write the rune so that it shows up in the error message.
		l.buf.WriteRune(r)
		return toks, l.error("", pos)
	}
}

// scanDigits appends the maximal run of decimal digits to the buffer.
func (l *lexer) scanDigits() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(kind string, pos int) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  pos,
	}
}

// LexError indicates an unsupported character in the input, or a decimal
// separator that does not follow a number. It implements InputError.
type LexError struct {
	// Text is the offending character.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" for
	// a misplaced decimal separator and the empty string otherwise.
	Kind string
	// Col is the column of the offending character.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "unsupported character at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
