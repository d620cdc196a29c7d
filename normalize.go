package postfix

// NormalizeDelimiters returns a copy of expr where brackets and braces have
// been replaced by parentheses.
func NormalizeDelimiters(expr []Token) []Token {
	ret := make([]Token, len(expr))
	copy(ret, expr)
	NormalizeDelimitersInPlace(ret)
	return ret
}

// NormalizeDelimitersInPlace is NormalizeDelimiters writing into expr.
func NormalizeDelimitersInPlace(expr []Token) {
	for i, tok := range expr {
		switch tok.v {
		case "[", "{":
			expr[i] = Token{t: TokenOpen, v: "("}
		case "]", "}":
			expr[i] = Token{t: TokenClose, v: ")"}
		}
	}
}
