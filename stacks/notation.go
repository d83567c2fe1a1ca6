package stacks

import (
	"fmt"
	"strconv"
)

// apply evaluates left op right with integer semantics.
// Division truncates toward zero.
func apply(op string, left, right int) (int, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadToken, op)
}

func isOperator(tok string) bool {
	switch tok {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

// EvalPolish evaluates a prefix expression such as ["*", "+", "2", "3", "4"]
// which reads (2+3)*4 = 20. Tokens are scanned right to left; numbers are
// pushed and each operator pops its left operand first.
func EvalPolish(tokens []string) (int, error) {
	var st stack[int]
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		if !isOperator(tok) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
			}
			st.push(n)
			continue
		}
		left, ok1 := st.pop()
		right, ok2 := st.pop()
		if !ok1 || !ok2 {
			return 0, fmt.Errorf("%w: operator %q at %d lacks operands", ErrMalformed, tok, i)
		}
		v, err := apply(tok, left, right)
		if err != nil {
			return 0, err
		}
		st.push(v)
	}
	return result(st)
}

// EvalRPN evaluates a postfix expression such as ["2", "3", "+", "4", "*"].
// Tokens are scanned left to right; each operator pops its right operand first.
func EvalRPN(tokens []string) (int, error) {
	var st stack[int]
	for i, tok := range tokens {
		if !isOperator(tok) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
			}
			st.push(n)
			continue
		}
		right, ok1 := st.pop()
		left, ok2 := st.pop()
		if !ok1 || !ok2 {
			return 0, fmt.Errorf("%w: operator %q at %d lacks operands", ErrMalformed, tok, i)
		}
		v, err := apply(tok, left, right)
		if err != nil {
			return 0, err
		}
		st.push(v)
	}
	return result(st)
}

// result checks exactly one value is left on the stack.
func result(st stack[int]) (int, error) {
	if len(st) != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrMalformed, len(st))
	}
	return st[0], nil
}
