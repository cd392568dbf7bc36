package eqsolve

import "strconv"

// OperatorError is an error indicating an operator where an operand belongs,
// e.g. in "2**3", or an operator with nothing after it. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the misplaced operator.
	Operator string
	// Trailing is whether the operator ends its subexpression.
	Trailing bool
}

func (err *OperatorError) Error() string {
	if err.Trailing {
		return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" has no right operand")
	}
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" where operand expected")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// OperandError is an error indicating two operands with no operator between
// them, e.g. "(2)3". It implements InputError.
type OperandError struct {
	// Col is the position of the second operand.
	Col int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operator before operand")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the open parenthesis, or empty if a close had no open.
	Left string
	// Right is the close parenthesis, or empty if an open was never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty input or an empty pair
// of parentheses. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DepthError is an error indicating parentheses nested more deeply than the
// parser allows. It implements InputError.
type DepthError struct {
	// Col is the position of the first open parenthesis past the limit.
	Col int
	// Max is the depth limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "parentheses nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, counting
	// only non-space runes.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*NumberFormatError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*UndefinedPowerError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*RangeError)(nil)
)
