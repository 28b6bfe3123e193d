package main

import (
	"bufio"
	"fmt"
	"github.com/hneemann/rpn"
	"io"
)

// repl reads one expression per line until the input is exhausted.
// A failed expression is reported and the loop continues.
func repl(in io.Reader, out io.Writer, cfg Config) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, cfg.Prompt)
		if !sc.Scan() {
			break
		}
		calculate(out, sc.Text(), cfg)
	}
	if cfg.Prompt != "" {
		fmt.Fprintln(out)
	}
	return sc.Err()
}

// evalArgs calculates each argument. It returns false if any of them failed.
func evalArgs(out io.Writer, args []string, cfg Config) bool {
	ok := true
	for _, a := range args {
		if !calculate(out, a, cfg) {
			ok = false
		}
	}
	return ok
}

// calculate runs the three stages on a single expression and prints
// the intermediate token sequences and the result or the first error.
// Input without tokens is ignored.
func calculate(w io.Writer, src string, cfg Config) bool {
	infix, err := rpn.Scan(src)
	if err != nil {
		return printError(w, err)
	}
	if len(infix) == 0 {
		return true
	}
	if cfg.Echo {
		fmt.Fprintf(w, "infix:   %v\n", infix)
	}

	postfix, err := rpn.ToPostfix(infix)
	if err != nil {
		return printError(w, err)
	}
	if cfg.Echo {
		fmt.Fprintf(w, "postfix: %v\n", postfix)
	}
	if cfg.Grouped {
		if g, err := rpn.PrettyPrint(postfix); err == nil {
			fmt.Fprintf(w, "grouped: %s\n", g)
		}
	}

	v, err := rpn.Evaluate(postfix)
	if err != nil {
		return printError(w, err)
	}
	if cfg.Echo {
		fmt.Fprint(w, "result:  ")
	}
	fmt.Fprintf(w, cfg.Format+"\n", v)
	return true
}

func printError(w io.Writer, err error) bool {
	fmt.Fprintf(w, "error:   %v\n", err)
	return false
}
