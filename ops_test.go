package postfix

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
	"github.com/mattn/anko/env"
	"github.com/mattn/anko/vm"
)

func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.txt")
	if err != nil {
		t.Fatal(err)
	}

	for _, fn := range fns {
		t.Log(fn)
		f, err := os.Open(fn)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		err = EvalLines(f, &buf)
		f.Close()
		if err != nil {
			t.Error(err)
			continue
		}
		got := buf.String()
		b, err := ioutil.ReadFile(fn[:len(fn)-3] + "out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Error(diff)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input []string
		want  int64
	}{
		{input: []string{"3", "4", "2", "*", "+"}, want: 11},
		{input: []string{"3", "4", "+", "2", "*"}, want: 14},
		{input: []string{"8", "3", "-", "2", "-"}, want: 3},
		{input: []string{"7", "2", "/"}, want: 3},
		{input: []string{"-7", "2", "/"}, want: -3},
		{input: []string{"7", "-2", "/"}, want: -3},
		{input: []string{"-7", "-2", "/"}, want: 3},
		{input: []string{"+5", "1", "-"}, want: 4},
		{input: []string{"42"}, want: 42},
		// unknown tokens are skipped
		{input: []string{"a", "1", "(", "2", "+", "b"}, want: 3},
		// surplus values leave the last one pushed
		{input: []string{"1", "2"}, want: 2},
	}
	for _, test := range tests {
		got, err := Evaluate(Tokens(test.input...))
		if err != nil {
			t.Errorf("%v: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %d for %v but got %d", test.want, test.input, got)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		input []string
		want  error
	}{
		{input: []string{"5", "0", "/"}, want: ErrDivisionByZero},
		{input: []string{"1", "1", "1", "-", "/"}, want: ErrDivisionByZero},
		{input: []string{"1", "+"}, want: ErrMalformed},
		{input: []string{"+"}, want: ErrMalformed},
		{input: []string{}, want: ErrMalformed},
		{input: []string{"x", "y"}, want: ErrMalformed},
	}
	for _, test := range tests {
		got, err := Evaluate(Tokens(test.input...))
		if !errors.Is(err, test.want) {
			t.Errorf("want %v for %v but got %v (value %d)", test.want, test.input, err, got)
		}
	}
}

func TestInvalidOperator(t *testing.T) {
	_, err := apply(Token{t: TokenOperator, v: "%"}, 1, 2)
	if !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("want %v but got %v", ErrInvalidOperator, err)
	}
	if !strings.Contains(err.Error(), "%") {
		t.Errorf("error should name the operator: %v", err)
	}
}

func TestEval(t *testing.T) {
	res, err := Eval(Tokens("(", "[", "1", "+", "2", "]", ")", "*", "{", "4", "}"))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("%# v", pretty.Formatter(res))
	want := &Result{
		Infix:   []string{"(", "[", "1", "+", "2", "]", ")", "*", "{", "4", "}"},
		Postfix: []string{"1", "2", "+", "4", "*"},
		Value:   12,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Error(diff)
	}

	_, err = Eval(Tokens("(", "1", "]"))
	if err != ErrUnbalanced {
		t.Errorf("want %v but got %v", ErrUnbalanced, err)
	}
}

func TestEvalString(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "3+4*2", want: 11},
		{input: "(3+4)*2", want: 14},
		{input: "{ [ 10 - 4 ] / 3 } * -2", want: -4},
		{input: "-7/2", want: -3},
	}
	for _, test := range tests {
		res, err := EvalString(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if res.Value != test.want {
			t.Errorf("want %d for %q but got %d", test.want, test.input, res.Value)
		}
	}
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// Division is left out: anko divides in floating point.
func TestEvalMatchesAnko(t *testing.T) {
	tests := []string{
		"3 + 4 * 2",
		"(3 + 4) * 2",
		"8 - 3 - 2",
		"2 * [3 + 4] * {5 - 1}",
		"1 - 2 * 3 + 4 * 5 - 6",
		"((1 + 2) * (3 + 4) - 5) * 6",
		"10 - [2 - {3 - (4 - 5)}]",
	}
	for _, test := range tests {
		res, err := EvalString(test)
		if err != nil {
			t.Errorf("%q: %v", test, err)
			continue
		}
		expr, err := NewParser(strings.NewReader(test)).Parse()
		if err != nil {
			t.Fatal(err)
		}
		src := Join(NormalizeDelimiters(expr))
		v, err := vm.Execute(env.NewEnv(), nil, src)
		if err != nil {
			t.Fatalf("anko %q: %v", src, err)
		}
		want, ok := toInt64(v)
		if !ok {
			t.Fatalf("anko %q returned %T", src, v)
		}
		if res.Value != want {
			t.Errorf("want %d for %q but got %d", want, test, res.Value)
		}
	}
}
