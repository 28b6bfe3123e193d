// Command rpn is an interactive calculator.
//
// Each input line is converted to reverse polish notation and evaluated.
// Expressions given as arguments are evaluated instead of reading stdin.
package main

import (
	"flag"
	"github.com/hneemann/rpn"
	"log"
	"os"
	"strings"
)

func main() {
	log.SetFlags(0)
	var (
		configFile, prompt, verb string
		quiet, grouped           bool
	)
	flag.StringVar(&configFile, "config", "", "YAML config file")
	flag.StringVar(&prompt, "prompt", "> ", "prompt printed before each input line")
	flag.StringVar(&verb, "fmt", "%g", "result formatting verb")
	flag.BoolVar(&quiet, "q", false, "print results only, no token sequences")
	flag.BoolVar(&grouped, "grouped", false, "print the expression with all implied parentheses")
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		log.SetOutput(w)
		log.Printf("usage: rpn [flags] [expression...]\n\nfunctions: %s\n\nflags:", strings.Join(rpn.FunctionNames(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}
	// flags given on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			cfg.Prompt = prompt
		case "fmt":
			cfg.Format = verb
		case "q":
			cfg.Echo = !quiet
		case "grouped":
			cfg.Grouped = grouped
		}
	})

	if flag.NArg() > 0 {
		if !evalArgs(os.Stdout, flag.Args(), cfg) {
			os.Exit(1)
		}
		return
	}

	if err := repl(os.Stdin, os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}
