/*
File   : lox-mix/parser/ast.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package parser turns a Token sequence into a statement-list AST via
// recursive descent with precedence climbing.
package parser

import (
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/value"
)

// Expr is implemented by every expression node. It is a closed sum type:
// the unexported exprNode method means only this package can add
// variants, so the evaluator's type switch over Expr can have a
// `default: panic(...)` safety net instead of silently compiling against
// a node nobody wired up.
type Expr interface {
	exprNode()
}

// Stmt is the statement-node counterpart of Expr.
type Stmt interface {
	stmtNode()
}

// LiteralExpr holds a constant value parsed directly from a token: a
// number, string, boolean, or nil.
type LiteralExpr struct {
	Value value.Value
}

// VariableExpr reads the current binding of an identifier.
type VariableExpr struct {
	Name lexer.Token // Name.Type == lexer.IDENTIFIER
}

// GroupingExpr is a parenthesized sub-expression, kept as its own node
// (rather than discarded at parse time) so --debug output shows the
// source's explicit grouping.
type GroupingExpr struct {
	Inner Expr
}

// UnaryExpr is a prefix operator applied to one operand: `!` or `-`.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

// BinaryExpr is an infix operator applied to two operands, evaluated
// left-to-right with no short-circuiting.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// LogicalExpr is `and`/`or`. It is a distinct node from BinaryExpr
// specifically because it short-circuits — the evaluator must not
// evaluate Right unconditionally.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// AssignExpr stores the result of Value into the variable named Name, in
// the nearest enclosing scope that already defines it.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// CallExpr invokes Callee with Args. Paren is the closing ')' token,
// kept so runtime errors (arity mismatch, non-callable callee) can be
// reported at a useful source position.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (LiteralExpr) exprNode()  {}
func (VariableExpr) exprNode() {}
func (GroupingExpr) exprNode() {}
func (UnaryExpr) exprNode()    {}
func (BinaryExpr) exprNode()   {}
func (LogicalExpr) exprNode()  {}
func (AssignExpr) exprNode()   {}
func (CallExpr) exprNode()     {}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and writes its textual form followed by a
// newline.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name in the current scope, bound to the evaluated
// Initializer, or to nil if Initializer is nil (no initializer present).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil when the declaration has no "= expression"
}

// BlockStmt introduces a fresh scope, evaluates Statements in it, and
// tears the scope down on every exit path.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt is a conditional. Else is nil when there is no else-branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
}

// WhileStmt re-evaluates Condition before each execution of Body. There
// is no dedicated for-loop node: `for` is desugared into this plus a
// Block at parse time.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (ExpressionStmt) stmtNode() {}
func (PrintStmt) stmtNode()      {}
func (VarStmt) stmtNode()        {}
func (BlockStmt) stmtNode()      {}
func (IfStmt) stmtNode()         {}
func (WhileStmt) stmtNode()      {}
