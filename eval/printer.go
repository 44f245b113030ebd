/*
File   : lox-mix/eval/printer.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/lox-mix/parser"
)

const printIndentSize = 2

// DebugPrinter renders a statement list as an indented tree, for the
// CLI's `--debug` flag. It is a plain type switch over the closed
// Expr/Stmt sum types, rather than a visitor-pattern dispatch.
type DebugPrinter struct {
	indent int
	buf    bytes.Buffer
}

// PrintProgram renders every statement in statements and returns the
// accumulated text.
func (p *DebugPrinter) PrintProgram(statements []parser.Stmt) string {
	for _, s := range statements {
		p.printStmt(s)
	}
	return p.buf.String()
}

func (p *DebugPrinter) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *DebugPrinter) nested(f func()) {
	p.indent += printIndentSize
	f()
	p.indent -= printIndentSize
}

func (p *DebugPrinter) printStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case parser.ExpressionStmt:
		p.line("ExpressionStmt")
		p.nested(func() { p.printExpr(s.Expr) })

	case parser.PrintStmt:
		p.line("PrintStmt")
		p.nested(func() { p.printExpr(s.Expr) })

	case parser.VarStmt:
		p.line("VarStmt %s", s.Name.Lexeme)
		if s.Initializer != nil {
			p.nested(func() { p.printExpr(s.Initializer) })
		}

	case parser.BlockStmt:
		p.line("BlockStmt")
		p.nested(func() {
			for _, inner := range s.Statements {
				p.printStmt(inner)
			}
		})

	case parser.IfStmt:
		p.line("IfStmt")
		p.nested(func() {
			p.line("condition:")
			p.nested(func() { p.printExpr(s.Condition) })
			p.line("then:")
			p.nested(func() { p.printStmt(s.Then) })
			if s.Else != nil {
				p.line("else:")
				p.nested(func() { p.printStmt(s.Else) })
			}
		})

	case parser.WhileStmt:
		p.line("WhileStmt")
		p.nested(func() {
			p.line("condition:")
			p.nested(func() { p.printExpr(s.Condition) })
			p.line("body:")
			p.nested(func() { p.printStmt(s.Body) })
		})

	default:
		p.line("<unknown statement %T>", stmt)
	}
}

func (p *DebugPrinter) printExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case parser.LiteralExpr:
		p.line("Literal %s", e.Value.String())

	case parser.VariableExpr:
		p.line("Variable %s", e.Name.Lexeme)

	case parser.GroupingExpr:
		p.line("Grouping")
		p.nested(func() { p.printExpr(e.Inner) })

	case parser.UnaryExpr:
		p.line("Unary %s", e.Operator.Lexeme)
		p.nested(func() { p.printExpr(e.Right) })

	case parser.BinaryExpr:
		p.line("Binary %s", e.Operator.Lexeme)
		p.nested(func() {
			p.printExpr(e.Left)
			p.printExpr(e.Right)
		})

	case parser.LogicalExpr:
		p.line("Logical %s", e.Operator.Lexeme)
		p.nested(func() {
			p.printExpr(e.Left)
			p.printExpr(e.Right)
		})

	case parser.AssignExpr:
		p.line("Assign %s", e.Name.Lexeme)
		p.nested(func() { p.printExpr(e.Value) })

	case parser.CallExpr:
		p.line("Call")
		p.nested(func() {
			p.printExpr(e.Callee)
			for _, a := range e.Args {
				p.printExpr(a)
			}
		})

	default:
		p.line("<unknown expression %T>", expr)
	}
}
