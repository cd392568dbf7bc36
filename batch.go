package eqsolve

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of solving one equation in a batch.
type Result struct {
	// Src is the equation text.
	Src string
	// Tree is the parsed equation, or nil if parsing failed.
	Tree *Node
	// Value is the result of evaluation, or nil if Err is not nil.
	Value *big.Float
	// Err is the error from parsing or evaluating the equation, if any.
	Err error
}

// SolveAll parses and evaluates each equation in srcs, running up to jobs at
// once. If jobs is not positive, it is GOMAXPROCS. Each equation is evaluated
// with a clone of base, or of a default context if base is nil.
//
// An error in one equation never stops the others; it is recorded in that
// equation's Result. The returned error is non-nil only if ctx is cancelled,
// in which case equations that had not started have ctx's error as their
// Err.
func SolveAll(ctx context.Context, base *Context, srcs []string, jobs int, opts ...ParseOption) ([]Result, error) {
	if base == nil {
		base = NewContext()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	r := make([]Result, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, src := range srcs {
		i, src := i, src // per-iteration copies (pre-Go 1.22 loop semantics)
		r[i].Src = src
		// Clone before starting the goroutine so that no two goroutines
		// ever touch base.
		ectx := base.Clone()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				r[i].Err = err
				return err
			}
			r[i].Tree, r[i].Value, r[i].Err = solve(ectx, src, opts)
			return nil
		})
	}
	err := g.Wait()
	return r, err
}

func solve(ctx *Context, src string, opts []ParseOption) (*Node, *big.Float, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return nil, nil, err
	}
	v, err := ctx.Eval(a)
	if err != nil {
		return a, nil, err
	}
	return a, v, nil
}
