// Package eqsolve parses and solves infix arithmetic equations.
//
// Expressions use the operators + - * / and ^ with parentheses. A minus sign
// that cannot be a subtraction is part of the number after it, so "5*-3" is
// a product of 5 and -3. A number or closing parenthesis directly followed by
// an opening parenthesis is a multiplication: "2(3+4)" is "2*(3+4)". Either
// '.' or ',' separates the integer and fractional parts of a number.
// Whitespace is ignored everywhere, including between digits.
//
// Exponentiation binds tighter than multiplication and division, which bind
// tighter than addition and subtraction. Every operator is left-associative,
// so "2^3^2" is "(2^3)^2".
//
// Parsing produces a tree of Nodes which can be evaluated any number of
// times, with either float64 results through Evaluate or arbitrary precision
// through a Context. Trees are never modified after Parse returns, so a single
// tree may be evaluated concurrently by separate Contexts.
//
package eqsolve
