/*
File    : lox-mix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter.
It reads one line at a time, treats it as a complete program fragment,
and evaluates it against an Evaluator whose bindings persist across
lines for the lifetime of the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lox-mix/eval"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
)

// Color definitions for REPL output.
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Repl is a configured interactive session. Prompt is shown before each
// line of input.
type Repl struct {
	Prompt string
	Debug  bool
}

// NewRepl returns a Repl using prompt as its line prompt.
func NewRepl(prompt string) *Repl {
	return &Repl{Prompt: prompt}
}

// Start runs the read-eval-print loop, reading lines via readline (for
// history and line editing) until EOF, and writing print output and
// diagnostics to writer.
func (r *Repl) Start(writer io.Writer) {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF (Ctrl+D) or read error: end the session.
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, evaluator)
	}
}

// evalLine lexes, parses, and interprets one line, reporting each error
// taxon distinctly without ending the session. A panic escaping the
// evaluator (an internal invariant violation, not a reported runtime
// error) is recovered here rather than crashing the REPL.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	lx := lexer.NewLexer(line)
	tokens := lx.ScanTokens()
	for _, lexErr := range lx.Errors() {
		redColor.Fprintf(writer, "%s\n", lexErr)
	}

	p := parser.NewParser(tokens)
	statements := p.Parse()
	if p.HasErrors() {
		for _, parseErr := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", parseErr)
		}
		return
	}

	if r.Debug {
		cyanColor.Fprintf(writer, "%s\n", tokensString(tokens))
		cyanColor.Fprintf(writer, "%s", (&eval.DebugPrinter{}).PrintProgram(statements))
	}

	if err := evaluator.Interpret(statements); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}

func tokensString(tokens []lexer.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
		b.WriteByte(' ')
	}
	return b.String()
}
