package eqsolve

import (
	"math"
	"math/big"
	"strconv"
)

// Context is a context for evaluating equations. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. The clone
// shares no state with ctx, so the two may be used concurrently.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		nums: make(map[string]*big.Float, len(ctx.nums)),
		prec: ctx.prec,
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case precopt:
			n.prec = uint(opt)
		default:
			panic("eqsolve: unknown option type")
		}
	}
	// Cached numbers are only reusable at the same precision.
	if n.prec == ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = new(big.Float).Copy(v)
		}
	}
	return &n
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates a parsed equation. The first error that occurs, such as a
// division by zero, stops evaluation. Eval panics if the tree is not shaped
// like a result of Parse.
func (ctx *Context) Eval(n *Node) (*big.Float, error) {
	if len(ctx.stack) != 0 {
		panic("eqsolve: Eval during Eval")
	}
	if err := n.eval(ctx); err != nil {
		ctx.stack = ctx.stack[:0]
		return nil, err
	}
	if len(ctx.stack) != 1 {
		panic("eqsolve: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
	return new(big.Float).Copy(ctx.pop()), nil
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float))
	}
	return ctx.stack[len(ctx.stack)-1].SetPrec(ctx.prec)
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text.
func (ctx *Context) num(s string) (*big.Float, error) {
	if r := ctx.nums[s]; r != nil {
		return r, nil
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil {
		return nil, err
	}
	ctx.nums[s] = r
	return r, nil
}

// eval pushes the node's value to the context's stack.
func (n *Node) eval(ctx *Context) error {
	switch n.Kind {
	case NodeNum:
		v, err := ctx.num(n.Text)
		if err != nil {
			return &NumberFormatError{Col: n.Pos, Text: n.Text, Err: err}
		}
		ctx.push().Set(v)
	case NodeGroup:
		switch len(n.Children) {
		case 1:
			return n.Children[0].eval(ctx)
		case 3:
			op := n.Children[1]
			if op.Kind != NodeOp {
				panic("eqsolve: operand " + op.String() + " in operator position")
			}
			f := binops[op.Op]
			if f == nil {
				panic("eqsolve: unknown operator " + op.Op.String())
			}
			if err := n.Children[0].eval(ctx); err != nil {
				return err
			}
			if err := n.Children[2].eval(ctx); err != nil {
				return err
			}
			r := ctx.pop()
			l := ctx.top()
			if err := f(l, r, op.Pos); err != nil {
				return err
			}
			if l.IsInf() {
				return &RangeError{Col: op.Pos}
			}
		default:
			panic("eqsolve: group with " + strconv.Itoa(len(n.Children)) + " children (bad AST?)")
		}
	default:
		panic("eqsolve: invalid AST node " + n.Kind.String())
	}
	return nil
}

// Evaluate evaluates a parsed equation to a float64 using a new context with
// the default precision. Results too large for a float64 are a *RangeError.
func Evaluate(n *Node) (float64, error) {
	v, err := NewContext().Eval(n)
	if err != nil {
		return 0, err
	}
	f, _ := v.Float64()
	if math.IsInf(f, 0) {
		return 0, &RangeError{Col: n.Pos}
	}
	return f, nil
}

// EvalString is a shortcut to parse and evaluate an equation.
func EvalString(src string, opts ...ContextOption) (*big.Float, error) {
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return NewContext(opts...).Eval(a)
}

// NumberFormatError is an error indicating a number token that is not a valid
// numeral, such as a minus sign with no digits after it. It implements
// InputError.
type NumberFormatError struct {
	// Col is the position of the number.
	Col int
	// Text is the text of the number.
	Text string
	// Err is the error from parsing the number.
	Err error
}

func (err *NumberFormatError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberFormatError) Unwrap() error {
	return err.Err
}

func (err *NumberFormatError) Pos() int {
	return err.Col
}

// RangeError is an error indicating a result too large in magnitude to
// represent. It implements InputError.
type RangeError struct {
	// Col is the position of the operator that overflowed, or of the whole
	// equation if the final result does not fit in a float64.
	Col int
}

func (err *RangeError) Error() string {
	return errpos(err.Col, "result out of range")
}

func (err *RangeError) Pos() int {
	return err.Col
}
