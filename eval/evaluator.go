/*
File   : lox-mix/eval/evaluator.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package eval walks the statement list parser produces and performs
// its side effects (print output, variable bindings).
package eval

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/akashmaji946/lox-mix/environment"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/value"
)

// yellowColor matches the donor's convention of coloring successful
// results/prints yellow, distinct from red errors and cyan diagnostics.
var yellowColor = color.New(color.FgYellow)

// RuntimeError is the abort signal for runtime failures: undefined
// variable, wrong operand types, arity mismatch, division by zero, call
// on a non-callable. Token pins a source line for the diagnostic, which
// matters for the messages that don't echo the lexeme.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

// Evaluator holds the one global environment that survives across
// top-level Interpret calls (bindings survive across REPL inputs) plus
// the environment currently in scope for the statement being executed.
type Evaluator struct {
	Globals *environment.Environment
	env     *environment.Environment
	out     io.Writer
}

// NewEvaluator returns an Evaluator with a fresh global scope preseeded
// with the clock builtin, writing print output to out.
func NewEvaluator(out io.Writer) *Evaluator {
	globals := environment.New(nil)
	globals.Define("clock", value.NewClock())
	return &Evaluator{Globals: globals, env: globals, out: out}
}

// Interpret evaluates statements in order and stops at the first runtime
// error: the error is returned to the caller (which reports it), but
// bindings already made to Globals or any enclosing scope remain in
// place for the next Interpret call.
func (e *Evaluator) Interpret(statements []parser.Stmt) error {
	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case parser.ExpressionStmt:
		_, err := e.evaluate(s.Expr)
		return err

	case parser.PrintStmt:
		v, err := e.evaluate(s.Expr)
		if err != nil {
			return err
		}
		yellowColor.Fprintln(e.out, v.String())
		return nil

	case parser.VarStmt:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = e.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		e.env.Define(s.Name.Lexeme, v)
		return nil

	case parser.BlockStmt:
		return e.executeBlock(s.Statements, environment.New(e.env))

	case parser.IfStmt:
		cond, err := e.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return e.execute(s.Then)
		}
		if s.Else != nil {
			return e.execute(s.Else)
		}
		return nil

	case parser.WhileStmt:
		for {
			cond, err := e.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := e.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		panic(fmt.Sprintf("eval: unhandled statement type %T", stmt))
	}
}

// executeBlock installs scope as the current environment, evaluates
// statements in it, and restores the previous environment on every exit
// path (normal return or an error unwinding through it).
func (e *Evaluator) executeBlock(statements []parser.Stmt, scope *environment.Environment) error {
	previous := e.env
	e.env = scope
	defer func() { e.env = previous }()

	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evaluate(expr parser.Expr) (value.Value, error) {
	switch ex := expr.(type) {
	case parser.LiteralExpr:
		return ex.Value, nil

	case parser.GroupingExpr:
		return e.evaluate(ex.Inner)

	case parser.VariableExpr:
		v, ok := e.env.Get(ex.Name.Lexeme)
		if !ok {
			return nil, &RuntimeError{Token: ex.Name, Message: fmt.Sprintf("Varname %s is never assigned", ex.Name.Lexeme)}
		}
		return v, nil

	case parser.AssignExpr:
		v, err := e.evaluate(ex.Value)
		if err != nil {
			return nil, err
		}
		if !e.env.Assign(ex.Name.Lexeme, v) {
			return nil, &RuntimeError{Token: ex.Name, Message: fmt.Sprintf("Varname %s is never assigned", ex.Name.Lexeme)}
		}
		return v, nil

	case parser.UnaryExpr:
		return e.evalUnary(ex)

	case parser.BinaryExpr:
		return e.evalBinary(ex)

	case parser.LogicalExpr:
		return e.evalLogical(ex)

	case parser.CallExpr:
		return e.evalCall(ex)

	default:
		panic(fmt.Sprintf("eval: unhandled expression type %T", expr))
	}
}

func (e *Evaluator) evalUnary(ex parser.UnaryExpr) (value.Value, error) {
	right, err := e.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Type {
	case lexer.BANG:
		return value.Boolean{Value: !value.Truthy(right)}, nil
	case lexer.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, &RuntimeError{Token: ex.Operator, Message: "Operand must be a number"}
		}
		return value.Number{Value: -n.Value}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled unary operator %v", ex.Operator.Type))
	}
}

func (e *Evaluator) evalLogical(ex parser.LogicalExpr) (value.Value, error) {
	left, err := e.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Type {
	case lexer.OR:
		if value.Truthy(left) {
			return left, nil
		}
	case lexer.AND:
		if !value.Truthy(left) {
			return left, nil
		}
	default:
		panic(fmt.Sprintf("eval: unhandled logical operator %v", ex.Operator.Type))
	}

	return e.evaluate(ex.Right)
}

// evalBinary evaluates both operands first, strictly left-to-right, then
// dispatches on the operator. `==`/`!=` accept any kind; every other
// operator requires number operands except `+`, which also
// accepts a pair of strings.
func (e *Evaluator) evalBinary(ex parser.BinaryExpr) (value.Value, error) {
	left, err := e.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Type {
	case lexer.EQUAL_EQUAL:
		return value.Boolean{Value: value.Equal(left, right)}, nil
	case lexer.BANG_EQUAL:
		return value.Boolean{Value: !value.Equal(left, right)}, nil

	case lexer.PLUS:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return value.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return value.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, &RuntimeError{Token: ex.Operator, Message: "Wrong types for addition"}

	case lexer.MINUS, lexer.STAR, lexer.SLASH,
		lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Token: ex.Operator, Message: "Operands must be numbers"}
		}
		return e.numericBinary(ex.Operator, ln.Value, rn.Value)

	default:
		panic(fmt.Sprintf("eval: unhandled binary operator %v", ex.Operator.Type))
	}
}

func (e *Evaluator) numericBinary(operator lexer.Token, left, right float64) (value.Value, error) {
	switch operator.Type {
	case lexer.MINUS:
		return value.Number{Value: left - right}, nil
	case lexer.STAR:
		return value.Number{Value: left * right}, nil
	case lexer.SLASH:
		if right == 0 {
			return nil, &RuntimeError{Token: operator, Message: "Cannot divide by zero"}
		}
		return value.Number{Value: left / right}, nil
	case lexer.LESS:
		return value.Boolean{Value: left < right}, nil
	case lexer.LESS_EQUAL:
		return value.Boolean{Value: left <= right}, nil
	case lexer.GREATER:
		return value.Boolean{Value: left > right}, nil
	case lexer.GREATER_EQUAL:
		return value.Boolean{Value: left >= right}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled numeric operator %v", operator.Type))
	}
}

func (e *Evaluator) evalCall(ex parser.CallExpr) (value.Value, error) {
	callee, err := e.evaluate(ex.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, &RuntimeError{Token: ex.Paren, Message: "Can only call functions"}
	}
	if callable.Arity() != len(args) {
		return nil, &RuntimeError{Token: ex.Paren, Message: fmt.Sprintf("Expected %d arguments but got %d", callable.Arity(), len(args))}
	}
	return callable.Call(args)
}
