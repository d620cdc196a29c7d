package postfix

import (
	"strconv"
	"strings"
)

type TokenType int

const (
	TokenOperand TokenType = iota
	TokenNumber
	TokenOperator
	TokenOpen
	TokenClose
)

func (t TokenType) String() string {
	switch t {
	case TokenOperand:
		return "operand"
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	}
	return "unknown"
}

// Token is one element of an expression. Its type is decided once, from
// the text, by NewToken.
type Token struct {
	t TokenType
	v string
	n int64
}

func NewToken(s string) Token {
	switch s {
	case "+", "-", "*", "/":
		return Token{t: TokenOperator, v: s}
	case "(", "[", "{":
		return Token{t: TokenOpen, v: s}
	case ")", "]", "}":
		return Token{t: TokenClose, v: s}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Token{t: TokenNumber, v: s, n: n}
	}
	return Token{t: TokenOperand, v: s}
}

// Tokens classifies each string.
func Tokens(ss ...string) []Token {
	tokens := make([]Token, len(ss))
	for i, s := range ss {
		tokens[i] = NewToken(s)
	}
	return tokens
}

// Strings returns the text of each token.
func Strings(tokens []Token) []string {
	ss := make([]string, len(tokens))
	for i, tok := range tokens {
		ss[i] = tok.v
	}
	return ss
}

func Join(tokens []Token) string {
	return strings.Join(Strings(tokens), " ")
}

func (t Token) Type() TokenType {
	return t.t
}

func (t Token) String() string {
	return t.v
}

// Int is the value of a number token, 0 for anything else.
func (t Token) Int() int64 {
	return t.n
}

func (t Token) IsOperator() bool {
	return t.t == TokenOperator
}

// IsOperand reports whether the converter copies t straight to its output.
// Only parentheses count as grouping here; brackets and braces are operands
// until they have been normalized.
func (t Token) IsOperand() bool {
	return !t.IsOperator() && t.v != "(" && t.v != ")"
}

func (t Token) IsNumber() bool {
	return t.t == TokenNumber
}

// Precedence ranks operators: 1 for + and -, 2 for * and /. Everything
// else, the open parenthesis included, is 0.
func (t Token) Precedence() int {
	switch t.v {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}
