/*
File    : lox-mix/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the interpreter. It provides two
modes of operation:
1. REPL mode (default): interactive read-eval-print loop
2. Batch mode: execute a single source file named on the command line
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lox-mix/eval"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/repl"
)

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "lox> "

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main dispatches between REPL mode, batch mode, and --help/--version.
func main() {
	debug := false
	var args []string
	for _, a := range os.Args[1:] {
		switch a {
		case "--debug":
			debug = true
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			args = append(args, a)
		}
	}

	if len(args) > 0 {
		if !runFile(args[0], debug) {
			os.Exit(1)
		}
		return
	}

	r := repl.NewRepl(PROMPT)
	r.Debug = debug
	r.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("lox - a small tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  lox                  start the interactive REPL")
	cyanColor.Println("  lox <path>           run a source file")
	cyanColor.Println("  lox --debug [path]   print tokens and AST before evaluating")
	cyanColor.Println("  lox --help           show this message")
	cyanColor.Println("  lox --version        show version information")
}

func showVersion() {
	fmt.Println("lox-mix v1.0.0")
}

// runFile reads and evaluates a single source file as one program,
// reporting lex, parse, and runtime errors to stderr. It returns false
// if any error was reported, so main can set a non-zero exit status. A
// panic escaping evaluation (an internal invariant violation, not a
// reported runtime error) is recovered here rather than crashing the
// process.
func runFile(path string, debug bool) (ok bool) {
	ok = true
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			ok = false
		}
	}()

	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %q: %v\n", path, err)
		return false
	}

	lx := lexer.NewLexer(string(source))
	tokens := lx.ScanTokens()
	lexedCleanly := true
	for _, lexErr := range lx.Errors() {
		redColor.Fprintf(os.Stderr, "%s\n", lexErr)
		lexedCleanly = false
	}

	p := parser.NewParser(tokens)
	statements := p.Parse()
	if p.HasErrors() {
		for _, parseErr := range p.Errors() {
			redColor.Fprintf(os.Stderr, "%s\n", parseErr)
		}
		return false
	}
	if !lexedCleanly {
		return false
	}

	if debug {
		cyanColor.Fprintln(os.Stdout, tokensDump(tokens))
		cyanColor.Fprint(os.Stdout, (&eval.DebugPrinter{}).PrintProgram(statements))
	}

	evaluator := eval.NewEvaluator(os.Stdout)
	if err := evaluator.Interpret(statements); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return false
	}
	return true
}

func tokensDump(tokens []lexer.Token) string {
	out := ""
	for _, t := range tokens {
		out += t.String() + " "
	}
	return out
}
