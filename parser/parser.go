/*
File   : lox-mix/parser/parser.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/value"
)

// parseError is raised (via panic) by consume/primary when the token
// stream doesn't match the grammar, and recovered by declaration(),
// which then calls synchronize and moves on to the next statement: a
// single malformed declaration doesn't abort the whole parse.
type parseError struct {
	line    int
	message string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.line, e.message)
}

// Parser consumes a flat Token slice (already lexed) and builds the
// statement-list AST via recursive descent with precedence climbing.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []error
}

// NewParser returns a Parser positioned at the start of tokens.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any declaration failed to parse.
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

// Errors returns every parse error collected so far, in source order.
func (p *Parser) Errors() []error {
	return p.errors
}

// Parse consumes every declaration in the token stream and returns the
// resulting statement list. A declaration that fails to parse is
// dropped (after synchronizing to the next statement boundary) and
// contributes no entry to the returned slice; Parse always returns,
// even if every declaration failed (an empty slice).
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration parses one `declaration := varDecl | statement` production,
// recovering from a parseError by synchronizing and reporting ok=false
// so the caller drops this declaration and continues with the next one.
func (p *Parser) declaration() (stmt Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			pe, isParseError := r.(*parseError)
			if !isParseError {
				panic(r)
			}
			p.errors = append(p.errors, pe)
			p.synchronize()
			ok = false
		}
	}()

	if p.match(lexer.VAR) {
		return p.varDeclaration(), true
	}
	return p.statement(), true
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "expect variable name")

	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "expect ';' after variable declaration")
	return VarStmt{Name: name, Initializer: initializer}
}

// statement parses the `statement` production. `class`, `fun`, and
// `return` are lexed keywords with no grammar production here;
// encountering one as the start of a statement is reported with a
// precise message rather than falling through to expression-statement
// parsing and failing confusingly on whatever follows.
func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return BlockStmt{Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.check(lexer.CLASS):
		panic(p.errorAt(p.peek(), "classes are not supported"))
	case p.check(lexer.FUN):
		panic(p.errorAt(p.peek(), "function declarations are not supported"))
	case p.check(lexer.RETURN):
		panic(p.errorAt(p.peek(), "return is not supported outside a function"))
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "expect ';' after value")
	return PrintStmt{Expr: expr}
}

func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt, ok := p.declaration(); ok {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "expect '}' after block")
	return statements
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "expect '(' after 'if'")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "expect ')' after if condition")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "expect '(' after 'while'")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "expect ')' after while condition")
	body := p.statement()
	return WhileStmt{Condition: condition, Body: body}
}

// forStatement parses a C-style for loop and desugars it at parse time
// into a Block/WhileStmt tree — there is no ForStmt node.
func (p *Parser) forStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "expect '(' after 'for'")

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "expect ';' after loop condition")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "expect ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = BlockStmt{Statements: []Stmt{body, ExpressionStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = LiteralExpr{Value: value.Boolean{Value: true}}
	}
	body = WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = BlockStmt{Statements: []Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "expect ';' after expression")
	return ExpressionStmt{Expr: expr}
}

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment implements assignment via a post-hoc check: the left
// side is parsed as an ordinary expression first; only if it turns out
// to be a VariableExpr does a following '=' turn it into an AssignExpr.
// Anything else on the left of '=' is a parse error that does not
// consume further tokens.
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(VariableExpr); ok {
			return AssignExpr{Name: v.Name, Value: value}
		}
		p.errors = append(p.errors, p.errorAt(equals, "invalid assignment target"))
		return expr
	}

	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.addition()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.addition()
		expr = BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) addition() Expr {
	expr := p.multiplication()
	for p.match(lexer.PLUS, lexer.MINUS) {
		operator := p.previous()
		right := p.multiplication()
		expr = BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) multiplication() Expr {
	expr := p.unary()
	for p.match(lexer.STAR, lexer.SLASH) {
		operator := p.previous()
		right := p.unary()
		expr = BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return UnaryExpr{Operator: operator, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		args = append(args, p.expression())
		for p.match(lexer.COMMA) {
			args = append(args, p.expression())
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "expect ')' after arguments")
	return CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return LiteralExpr{Value: value.Boolean{Value: false}}
	case p.match(lexer.TRUE):
		return LiteralExpr{Value: value.Boolean{Value: true}}
	case p.match(lexer.NIL):
		return LiteralExpr{Value: value.Nil{}}
	case p.match(lexer.NUMBER):
		return LiteralExpr{Value: value.Number{Value: p.previous().Literal.(float64)}}
	case p.match(lexer.STRING):
		return LiteralExpr{Value: value.String{Value: p.previous().Literal.(string)}}
	case p.match(lexer.IDENTIFIER):
		return VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "expect ')' after expression")
		return GroupingExpr{Inner: expr}
	case p.check(lexer.THIS):
		panic(p.errorAt(p.peek(), "'this' is not supported outside a class"))
	case p.check(lexer.SUPER):
		panic(p.errorAt(p.peek(), "'super' is not supported outside a class"))
	default:
		panic(p.errorAt(p.peek(), "expect expression"))
	}
}

// --- token-stream primitives -------------------------------------------------

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume advances past the current token if it has type t, or panics
// with a parseError carrying msg otherwise.
func (p *Parser) consume(t lexer.TokenType, msg string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), msg))
}

func (p *Parser) errorAt(tok lexer.Token, msg string) *parseError {
	if tok.Type == lexer.EOF {
		return &parseError{line: tok.Line, message: "at end: " + msg}
	}
	return &parseError{line: tok.Line, message: fmt.Sprintf("at '%s': %s", tok.Lexeme, msg)}
}

// synchronize discards tokens until it reaches what looks like the start
// of the next statement, so one malformed declaration doesn't cascade
// into spurious errors for everything after it.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF,
			lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}

		p.advance()
	}
}
