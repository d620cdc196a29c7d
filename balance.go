package postfix

var closers = map[string]string{
	"(": ")",
	"{": "}",
	"[": "]",
}

// IsBalanced reports whether every delimiter in expr is closed by its own
// kind in nesting order. Other tokens are ignored and expr is not modified.
func IsBalanced(expr []Token) bool {
	var stack []Token
	for _, tok := range expr {
		switch tok.t {
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			if len(stack) == 0 {
				return false
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if closers[open.v] != tok.v {
				return false
			}
		}
	}
	return len(stack) == 0
}
