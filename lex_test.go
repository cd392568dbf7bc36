package eqsolve

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		{"", nil},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}},
		{"1.5", []lexToken{{text: "1.5", kind: tokenNum, pos: 1}}},
		{"2,5", []lexToken{{text: "2.5", kind: tokenNum, pos: 1}}},
		{"-1,25", []lexToken{{text: "-1.25", kind: tokenNum, pos: 1}}},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, pos: 1}}},
		// signs and subtraction
		{"-3+5", []lexToken{
			{text: "-3", kind: tokenNum, pos: 1},
			{text: "+", kind: tokenOp, op: OpAdd, pos: 3},
			{text: "5", kind: tokenNum, pos: 4},
		}},
		{"5-3", []lexToken{
			{text: "5", kind: tokenNum, pos: 1},
			{text: "-", kind: tokenOp, op: OpSub, pos: 2},
			{text: "3", kind: tokenNum, pos: 3},
		}},
		{"5*-3", []lexToken{
			{text: "5", kind: tokenNum, pos: 1},
			{text: "*", kind: tokenOp, op: OpMul, pos: 2},
			{text: "-3", kind: tokenNum, pos: 3},
		}},
		{"(1)-2", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "1", kind: tokenNum, pos: 2},
			{text: ")", kind: tokenClose, pos: 3},
			{text: "-", kind: tokenOp, op: OpSub, pos: 4},
			{text: "2", kind: tokenNum, pos: 5},
		}},
		{"(-2)", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "-2", kind: tokenNum, pos: 2},
			{text: ")", kind: tokenClose, pos: 4},
		}},
		{"--3", []lexToken{
			{text: "-", kind: tokenNum, pos: 1},
			{text: "-", kind: tokenOp, op: OpSub, pos: 2},
			{text: "3", kind: tokenNum, pos: 3},
		}},
		// operators
		{"1/2^3", []lexToken{
			{text: "1", kind: tokenNum, pos: 1},
			{text: "/", kind: tokenOp, op: OpDiv, pos: 2},
			{text: "2", kind: tokenNum, pos: 3},
			{text: "^", kind: tokenOp, op: OpPow, pos: 4},
			{text: "3", kind: tokenNum, pos: 5},
		}},
		// implicit multiplication
		{"2(1)", []lexToken{
			{text: "2", kind: tokenNum, pos: 1},
			{text: "*", kind: tokenOp, op: OpMul, pos: 2},
			{text: "(", kind: tokenOpen, pos: 2},
			{text: "1", kind: tokenNum, pos: 3},
			{text: ")", kind: tokenClose, pos: 4},
		}},
		{"(1)(2)", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "1", kind: tokenNum, pos: 2},
			{text: ")", kind: tokenClose, pos: 3},
			{text: "*", kind: tokenOp, op: OpMul, pos: 4},
			{text: "(", kind: tokenOpen, pos: 4},
			{text: "2", kind: tokenNum, pos: 5},
			{text: ")", kind: tokenClose, pos: 6},
		}},
		{"+(", []lexToken{
			{text: "+", kind: tokenOp, op: OpAdd, pos: 1},
			{text: "(", kind: tokenOpen, pos: 2},
		}},
	}
	for _, c := range cases {
		got, err := lex(strings.NewReader(c.src)).all()
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if diff := cmp.Diff(c.tokens, got, cmp.AllowUnexported(lexToken{})); diff != "" {
			t.Errorf("scanning %q: wrong tokens (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		want LexError
	}{
		{"$", LexError{Text: "$", Col: 1}},
		{"1+x", LexError{Text: "x", Col: 3}},
		{"1 2", LexError{Text: " ", Col: 2}},
		{".5", LexError{Text: ".", Kind: "number", Col: 1}},
		{"1+,5", LexError{Text: ",", Kind: "number", Col: 3}},
		{"(1).5", LexError{Text: ".", Kind: "number", Col: 4}},
	}
	for _, c := range cases {
		_, err := lex(strings.NewReader(c.src)).all()
		var got *LexError
		if !errors.As(err, &got) {
			t.Errorf("scanning %q: want LexError, got %v", c.src, err)
			continue
		}
		if *got != c.want {
			t.Errorf("scanning %q: want %+v, got %+v", c.src, c.want, *got)
		}
		if got.Pos() != c.want.Col {
			t.Errorf("scanning %q: Pos() is %d, want %d", c.src, got.Pos(), c.want.Col)
		}
	}
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		k    interface{ String() string }
		want string
	}{
		{tokenNone, "None"},
		{tokenNum, "Num"},
		{tokenOp, "Op"},
		{tokenOpen, "Open"},
		{tokenClose, "Close"},
		{tokenKind(9), "tokenKind(9)"},
		{NodeNone, "None"},
		{NodeNum, "Num"},
		{NodeOp, "Op"},
		{NodeGroup, "Group"},
		{NodeKind(-1), "NodeKind(-1)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("%#v: want %q, got %q", c.k, c.want, got)
		}
	}
}
