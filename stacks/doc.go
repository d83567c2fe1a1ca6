// Package stacks holds exercises whose natural tool is a LIFO stack:
// bracket validation, reversing text inside parentheses, and evaluating
// prefix (Polish) and postfix (reverse Polish) integer expressions.
//
// Direction rule of thumb:
//
//	notation          traverse        operand order on pop
//	prefix  (Polish)  right → left    first pop is the LEFT operand
//	postfix (RPN)     left → right    first pop is the RIGHT operand
package stacks

import "errors"

var (
	// ErrUnbalanced indicates parentheses that do not pair up.
	ErrUnbalanced = errors.New("stacks: unbalanced parentheses")

	// ErrMalformed indicates an expression with too few or too many operands.
	ErrMalformed = errors.New("stacks: malformed expression")

	// ErrBadToken indicates a token that is neither an operator nor an integer.
	ErrBadToken = errors.New("stacks: invalid token")

	// ErrDivisionByZero indicates a '/' with a zero divisor.
	ErrDivisionByZero = errors.New("stacks: division by zero")
)
