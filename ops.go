package eqsolve

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// binary implements an operator. It sets l to the result of applying the
// operator to l and r and may modify r. col is the column of the operator.
type binary func(l, r *big.Float, col int) error

var binops = map[Op]binary{
	OpAdd: func(l, r *big.Float, col int) error {
		l.Add(l, r)
		return nil
	},
	OpSub: func(l, r *big.Float, col int) error {
		l.Sub(l, r)
		return nil
	},
	OpMul: func(l, r *big.Float, col int) error {
		l.Mul(l, r)
		return nil
	},
	OpDiv: func(l, r *big.Float, col int) error {
		if r.Sign() == 0 {
			return &DivisionByZeroError{Col: col, X: new(big.Float).Copy(l)}
		}
		l.Quo(l, r)
		return nil
	},
	OpPow: pow,
}

// pow sets l to l^r. Integer exponents are computed by repeated squaring so
// that results like 5^2 are exact; others go through bigfloat.Pow.
func pow(l, r *big.Float, col int) error {
	switch {
	case l.Sign() == 0 && r.Sign() == 0:
		return &UndefinedPowerError{Col: col}
	case l.Sign() == 0 && r.Sign() < 0:
		return &DivisionByZeroError{Col: col, X: big.NewFloat(1)}
	case l.Sign() == 0:
		l.SetInt64(0)
		return nil
	case r.Sign() == 0:
		l.SetInt64(1)
		return nil
	}
	if e, acc := r.Int64(); acc == big.Exact {
		intpow(l, e)
		return nil
	}
	neg, odd := l.Signbit(), false
	if neg {
		if !r.IsInt() {
			return &DomainError{Col: col, X: new(big.Float).Copy(l), Op: "^"}
		}
		i, _ := r.Int(nil)
		odd = i.Bit(0) == 1
		l.Neg(l)
	}
	switch e := powExp(l, r); {
	case l.Cmp(bigOne) == 0:
		// 1^r is 1, even when r is too large for bigfloat.Pow.
	case e > big.MaxExp:
		return &RangeError{Col: col}
	case e < big.MinExp:
		l.SetInt64(0)
	default:
		bigfloat.Pow(l, l, r)
	}
	if odd {
		l.Neg(l)
	}
	return nil
}

var bigOne = big.NewFloat(1)

// powExp estimates the binary exponent of l^r, i.e. r*log2(l), for positive
// l. The result is ±Inf when r is beyond the range of a float64.
func powExp(l, r *big.Float) float64 {
	var mant big.Float
	exp := l.MantExp(&mant)
	m, _ := mant.Float64()
	y, _ := r.Float64()
	return y * (float64(exp) + math.Log2(m))
}

// intpow sets z to z^e. z must be nonzero.
func intpow(z *big.Float, e int64) {
	u := uint64(e)
	if e < 0 {
		u = uint64(-(e + 1)) + 1
	}
	x := new(big.Float).SetPrec(z.Prec()).Set(z)
	z.SetInt64(1)
	for u > 0 {
		if u&1 != 0 {
			z.Mul(z, x)
		}
		u >>= 1
		if u > 0 {
			x.Mul(x, x)
		}
	}
	if e < 0 {
		z.Quo(new(big.Float).SetPrec(z.Prec()).SetInt64(1), z)
	}
}

// DivisionByZeroError is an error indicating a division by zero, either
// directly or as a negative power of zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the operator.
	Col int
	// X is the dividend.
	X *big.Float
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+err.X.String()+"/0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// UndefinedPowerError is an error indicating 0^0. It implements InputError.
type UndefinedPowerError struct {
	// Col is the position of the operator.
	Col int
}

func (err *UndefinedPowerError) Error() string {
	return errpos(err.Col, "zero to the power of zero is undefined")
}

func (err *UndefinedPowerError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator is applied to arguments
// outside its domain, such as a negative number raised to a fractional power.
// It implements InputError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// X is the out-of-domain argument.
	X *big.Float
	// Op is the operator.
	Op string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, err.X.String()+" outside domain of "+err.Op)
}

func (err *DomainError) Pos() int {
	return err.Col
}
