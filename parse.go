package postfix

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
)

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf: bufio.NewReader(r),
	}
}

// Parser splits text into tokens.
type Parser struct {
	buf  *bufio.Reader
	pos  int
	prev *Token
}

func (p *Parser) SkipWhite() {
	for {
		r, err := p.readRune()
		if err != nil {
			return
		}
		if r == '#' {
			for {
				r, err = p.readRune()
				if err != nil {
					return
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			p.unreadRune()
			return
		}
	}
}

func isSymbolLetter(r rune) bool {
	return strings.ContainsRune(`+-*/()[]{}`, r)
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) readRune() (rune, error) {
	r, n, err := p.buf.ReadRune()
	p.pos += n
	return r, err
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	p.pos -= 1
	return err
}

// signAllowed reports whether a + or - read now may start a number.
func (p *Parser) signAllowed() bool {
	if p.prev == nil {
		return true
	}
	return p.prev.t == TokenOperator || p.prev.t == TokenOpen
}

func (p *Parser) parseRun(first rune, accept func(rune) bool) string {
	var buf bytes.Buffer
	buf.WriteRune(first)
	for {
		r, err := p.readRune()
		if err != nil {
			break
		}
		if !accept(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

func (p *Parser) next() (Token, error) {
	p.SkipWhite()
	r, err := p.readRune()
	if err != nil {
		return Token{}, err
	}

	if (r == '+' || r == '-') && p.signAllowed() {
		b, err := p.buf.Peek(1)
		if err == nil && b[0] >= '0' && b[0] <= '9' {
			return NewToken(p.parseRun(r, unicode.IsDigit)), nil
		}
	}
	if isSymbolLetter(r) {
		return NewToken(string(r)), nil
	}
	if unicode.IsDigit(r) {
		return NewToken(p.parseRun(r, unicode.IsDigit)), nil
	}
	if unicode.IsLetter(r) {
		return NewToken(p.parseRun(r, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		})), nil
	}
	return Token{}, fmt.Errorf("invalid token: '%c' (%d)", r, p.Pos())
}

// Next returns the next token, or io.EOF at the end of input.
func (p *Parser) Next() (Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	p.prev = &tok
	return tok, nil
}

// Parse reads all remaining tokens.
func (p *Parser) Parse() ([]Token, error) {
	var ret []Token
	for {
		tok, err := p.Next()
		if err == io.EOF {
			return ret, nil
		}
		if err != nil {
			return nil, err
		}
		ret = append(ret, tok)
	}
}
