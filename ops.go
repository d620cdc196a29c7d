package postfix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrMalformed       = errors.New("malformed expression")
	ErrUnbalanced      = errors.New("unbalanced delimiters")
)

type Fn func(lhs, rhs int64) (int64, error)

var ops map[string]Fn

func init() {
	ops = make(map[string]Fn)
	ops["+"] = doPlus
	ops["-"] = doMinus
	ops["*"] = doMul
	ops["/"] = doDiv
}

func doPlus(lhs, rhs int64) (int64, error) {
	return lhs + rhs, nil
}

func doMinus(lhs, rhs int64) (int64, error) {
	return lhs - rhs, nil
}

func doMul(lhs, rhs int64) (int64, error) {
	return lhs * rhs, nil
}

// doDiv truncates toward zero.
func doDiv(lhs, rhs int64) (int64, error) {
	if rhs == 0 {
		return 0, ErrDivisionByZero
	}
	return lhs / rhs, nil
}

func apply(op Token, lhs, rhs int64) (int64, error) {
	fn, ok := ops[op.v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOperator, op)
	}
	return fn(lhs, rhs)
}

// Evaluate computes the value of a postfix expression. Tokens that are
// neither numbers nor operators are skipped. When more than one value is
// left at the end, the last one pushed is returned.
func Evaluate(expr []Token) (int64, error) {
	var stack []int64

	for i, tok := range expr {
		switch {
		case tok.IsNumber():
			stack = append(stack, tok.n)
		case tok.IsOperator():
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w: missing operand for %v at %d", ErrMalformed, tok, i)
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := apply(tok, lhs, rhs)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		}
	}

	if len(stack) == 0 {
		return 0, fmt.Errorf("%w: no value", ErrMalformed)
	}
	return stack[len(stack)-1], nil
}

type Result struct {
	Infix   []string
	Postfix []string
	Value   int64
}

// Eval checks, normalizes, converts and evaluates an infix expression.
func Eval(expr []Token) (*Result, error) {
	if !IsBalanced(expr) {
		return nil, ErrUnbalanced
	}
	normalized := NormalizeDelimiters(expr)
	rpn, err := ToPostfix(normalized)
	if err != nil {
		return nil, err
	}
	v, err := Evaluate(rpn)
	if err != nil {
		return nil, err
	}
	return &Result{
		Infix:   Strings(expr),
		Postfix: Strings(rpn),
		Value:   v,
	}, nil
}

func EvalString(s string) (*Result, error) {
	expr, err := NewParser(strings.NewReader(s)).Parse()
	if err != nil {
		return nil, err
	}
	return Eval(expr)
}

// EvalLines evaluates each non-empty line of r and writes one line of output
// per expression. Expression errors are written to w; only I/O errors are
// returned.
func EvalLines(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		expr, err := NewParser(strings.NewReader(scanner.Text())).Parse()
		if err == nil && len(expr) == 0 {
			continue
		}
		var res *Result
		if err == nil {
			res, err = Eval(expr)
		}
		if err != nil {
			_, err = fmt.Fprintf(w, "error: %v\n", err)
		} else {
			_, err = fmt.Fprintf(w, "%s = %d\n", strings.Join(res.Postfix, " "), res.Value)
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}
