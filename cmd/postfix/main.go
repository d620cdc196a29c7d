package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	"github.com/mattn/postfix"
	_ "github.com/mattn/postfix/statik"
)

var (
	verbose  = flag.Bool("v", false, "dump every stage of the evaluation")
	rpn      = flag.Bool("rpn", false, "input is already in postfix order")
	check    = flag.Bool("check", false, "only report whether delimiters are balanced")
	examples = flag.Bool("examples", false, "run the bundled example scripts")
)

func run(w io.Writer, line string) error {
	expr, err := postfix.NewParser(strings.NewReader(line)).Parse()
	if err != nil {
		return err
	}
	if len(expr) == 0 {
		return nil
	}

	switch {
	case *check:
		fmt.Fprintln(w, postfix.IsBalanced(expr))
		return nil
	case *rpn:
		v, err := postfix.Evaluate(expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
		return nil
	}

	res, err := postfix.Eval(expr)
	if err != nil {
		return err
	}
	if *verbose {
		fmt.Fprintf(w, "%# v\n", pretty.Formatter(res))
		return nil
	}
	fmt.Fprintln(w, res.Value)
	return nil
}

func repl() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if err := run(os.Stdout, scanner.Text()); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func main() {
	flag.Parse()

	if *examples {
		if err := postfix.RunScripts(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	var f *os.File
	var err error

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl()
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := run(os.Stdout, scanner.Text()); err != nil {
			log.Fatal(err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
