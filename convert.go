package postfix

import (
	"fmt"
)

// ToPostfix converts an infix expression to postfix order with the
// shunting-yard algorithm. Operators of equal precedence associate to the
// left. Operands are not validated; that is left to Evaluate.
//
// A ')' without a matching '(' returns ErrMalformed. An unclosed '(' is
// copied to the output like any other stack entry.
func ToPostfix(expr []Token) ([]Token, error) {
	var stack []Token
	ret := make([]Token, 0, len(expr))

	for i, tok := range expr {
		switch {
		case tok.IsOperand():
			ret = append(ret, tok)
		case tok.v == "(":
			stack = append(stack, tok)
		case tok.v == ")":
			for len(stack) > 0 && stack[len(stack)-1].v != "(" {
				ret = append(ret, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unmatched ')' at %d", ErrMalformed, i)
			}
			stack = stack[:len(stack)-1]
		default:
			for len(stack) > 0 && stack[len(stack)-1].Precedence() >= tok.Precedence() {
				ret = append(ret, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}

	for len(stack) > 0 {
		ret = append(ret, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return ret, nil
}
