package stacks

import "fmt"

// pairs maps each closing bracket to its opener.
var pairs = map[rune]rune{')': '(', ']': '[', '}': '{'}

// ValidParentheses reports whether s is a well-formed sequence of (), []
// and {}. Any other character makes s invalid.
func ValidParentheses(s string) bool {
	var st stack[rune]
	for _, c := range s {
		switch c {
		case '(', '[', '{':
			st.push(c)
		case ')', ']', '}':
			top, ok := st.pop()
			if !ok || top != pairs[c] {
				return false
			}
		default:
			return false
		}
	}
	return len(st) == 0
}

// ReverseParentheses reverses the text inside every pair of parentheses,
// innermost first, and drops the parentheses:
//
//	"abc(def)ghi"  -> "abcfedghi"
//	"a(bc(de)f)g"  -> "afdecbg"
//	"(u(love)i)"   -> "iloveu"
func ReverseParentheses(s string) (string, error) {
	var st stack[rune]
	for i, c := range s {
		if c != ')' {
			st.push(c)
			continue
		}
		// Pop until the matching '(' collecting runes in reverse.
		var tmp []rune
		for {
			top, ok := st.peek()
			if !ok {
				return "", fmt.Errorf("%w: ')' at %d has no opener", ErrUnbalanced, i)
			}
			if top == '(' {
				break
			}
			st.pop()
			tmp = append(tmp, top)
		}
		st.pop() // the '('
		for _, r := range tmp {
			st.push(r)
		}
	}
	for _, r := range st {
		if r == '(' {
			return "", fmt.Errorf("%w: unclosed '('", ErrUnbalanced)
		}
	}
	return string([]rune(st)), nil
}
