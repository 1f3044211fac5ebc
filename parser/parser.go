// Recursive descent parser.
// https://en.wikipedia.org/wiki/Recursive_descent_parser
//
// A recursive descent parser is a top-down parser because it starts
// from the top grammar rule and works its way down into nested
// sub-expressions before reaching the leaves of the syntax tree
// (terminal rules).
package parser

import (
	"fmt"

	"rlox/ast"
	"rlox/token"
)

const maxCallArgs = 255

var comparisonTokenTypes = []token.TokenType{
	token.LARGER,
	token.LARGER_EQUAL,
	token.LESS,
	token.LESS_EQUAL,
}

var equalityTokenTypes = []token.TokenType{
	token.NOT_EQUAL,
	token.EQUAL_EQUAL,
}

var termTokenTypes = []token.TokenType{
	token.SUB,
	token.ADD,
}

var factorExpressionTypes = []token.TokenType{
	token.MULT,
	token.DIV,
}

var unaryExpressionTypes = []token.TokenType{
	token.BANG,
	token.SUB,
}

type Parser struct {
	tokens   []token.Token
	position int
}

// NOTE: The parser's position is always one unit ahead of the current
// token.

// Make initializes a new Parser over an already-lexed token stream.
func Make(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, position: 0}
}

func (parser *Parser) Print(statements []ast.Stmt) {
	_, err := PrintASTJSON(statements)
	if err != nil {
		fmt.Println("error producing AST JSON:", err)
	}
}

func (parser *Parser) PrintToFile(statements []ast.Stmt, path string) error {
	return WriteASTJSONToFile(statements, path)
}

func (parser *Parser) peek() token.Token {
	return parser.tokens[parser.position]
}

func (parser *Parser) previous() token.Token {
	return parser.tokens[parser.position-1]
}

func (parser *Parser) advance() token.Token {
	if !parser.isFinished() {
		parser.position++
	}
	return parser.previous()
}

func (parser *Parser) isFinished() bool {
	return parser.peek().TokenType == token.EOF
}

func (parser *Parser) checkType(tokenType token.TokenType) bool {
	if parser.isFinished() {
		return false
	}
	return parser.peek().TokenType == tokenType
}

func (parser *Parser) isMatch(tokenTypes []token.TokenType) bool {
	for _, tokenType := range tokenTypes {
		if parser.checkType(tokenType) {
			parser.advance()
			return true
		}
	}
	return false
}

// Parse parses the entire token stream into a slice of Stmt nodes,
// continuing until the end of input. Parsing errors are collected and
// the parser synchronizes to the next statement boundary so that a
// single run can report every syntax error it finds, not just the
// first.
func (parser *Parser) Parse() ([]ast.Stmt, []error) {
	statements := []ast.Stmt{}
	errors := []error{}

	for !parser.isFinished() {
		statement, err := parser.declaration()
		if err != nil {
			errors = append(errors, err)
			if syntaxErr, ok := err.(SyntaxError); !ok || !syntaxErr.NoSync {
				parser.synchronize()
			}
			continue
		}
		statements = append(statements, statement)
	}

	return statements, errors
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so that a single syntax error does not cascade into a wall
// of spurious follow-on errors.
func (parser *Parser) synchronize() {
	parser.advance()
	for !parser.isFinished() {
		if parser.previous().TokenType == token.SEMICOLON {
			return
		}
		switch parser.peek().TokenType {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		parser.advance()
	}
}

// declaration parses a declaration: a function, a variable, or a plain
// statement.
func (parser *Parser) declaration() (ast.Stmt, error) {
	if parser.isMatch([]token.TokenType{token.FUN}) {
		return parser.functionDeclaration("function")
	}
	if parser.isMatch([]token.TokenType{token.VAR}) {
		return parser.variableDeclaration()
	}
	return parser.statement()
}

// functionDeclaration parses "fun name(params) { body }".
func (parser *Parser) functionDeclaration(kind string) (ast.Stmt, error) {
	name, err := parser.consume(token.IDENTIFIER, fmt.Sprintf("expected %s name", kind))
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.LPA, fmt.Sprintf("expected '(' after %s name", kind)); err != nil {
		return nil, err
	}

	params := []token.Token{}
	if !parser.checkType(token.RPA) {
		for {
			if len(params) >= maxCallArgs {
				currentToken := parser.peek()
				return nil, createNonSyncingError(currentToken.Span, fmt.Sprintf("can't have more than %d parameters", maxCallArgs))
			}
			param, err := parser.consume(token.IDENTIFIER, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !parser.isMatch([]token.TokenType{token.COMMA}) {
				break
			}
		}
	}
	if _, err := parser.consume(token.RPA, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.LCUR, fmt.Sprintf("expected '{' before %s body", kind)); err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// variableDeclaration parses "var name;" or "var name = initializer;".
func (parser *Parser) variableDeclaration() (ast.Stmt, error) {
	tok, consumeError := parser.consume(token.IDENTIFIER, "expected variable name")
	if consumeError != nil {
		return nil, consumeError
	}

	var initialiser ast.Expression
	if parser.isMatch([]token.TokenType{token.ASSIGN}) {
		var err error
		initialiser, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := parser.consume(token.SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}

	return &ast.VarStmt{Name: tok, Initializer: initialiser}, nil
}

// statement parses a single statement.
func (parser *Parser) statement() (ast.Stmt, error) {
	if parser.isMatch([]token.TokenType{token.PRINT}) {
		return parser.printStatement()
	}
	if parser.isMatch([]token.TokenType{token.LCUR}) {
		statements, err := parser.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: statements}, nil
	}
	if parser.isMatch([]token.TokenType{token.IF}) {
		return parser.ifStatement()
	}
	if parser.isMatch([]token.TokenType{token.WHILE}) {
		return parser.whileStatement()
	}
	if parser.isMatch([]token.TokenType{token.FOR}) {
		return parser.forStatement()
	}
	if parser.isMatch([]token.TokenType{token.RETURN}) {
		return parser.returnStatement()
	}

	return parser.expressionStatement()
}

func (parser *Parser) printStatement() (ast.Stmt, error) {
	expression, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.SEMICOLON, "expected ';' after value"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: expression}, nil
}

func (parser *Parser) returnStatement() (ast.Stmt, error) {
	keyword := parser.previous()
	var value ast.Expression
	if !parser.checkType(token.SEMICOLON) {
		var err error
		value, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(token.SEMICOLON, "expected ';' after return value"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (parser *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := parser.consume(token.LPA, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	condition, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.RPA, "expected ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := parser.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

// forStatement desugars "for (init; cond; incr) body" into the
// equivalent block/while form, since the AST and every backend only
// need to understand WhileStmt.
func (parser *Parser) forStatement() (ast.Stmt, error) {
	if _, err := parser.consume(token.LPA, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	if parser.isMatch([]token.TokenType{token.SEMICOLON}) {
		initializer = nil
	} else if parser.isMatch([]token.TokenType{token.VAR}) {
		initializer, err = parser.variableDeclaration()
		if err != nil {
			return nil, err
		}
	} else {
		initializer, err = parser.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition ast.Expression
	if !parser.checkType(token.SEMICOLON) {
		condition, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(token.SEMICOLON, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment ast.Expression
	if !parser.checkType(token.RPA) {
		increment, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(token.RPA, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := parser.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		// synthesized condition: there is no source token for an omitted
		// for-loop condition, and ast.Literal carries no span at all.
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body, nil
}

func (parser *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := parser.consume(token.LPA, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	conditionExpr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.RPA, "expected ')' after if condition"); err != nil {
		return nil, err
	}

	thenStmt, err := parser.statement()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Stmt
	if parser.isMatch([]token.TokenType{token.ELSE}) {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		elseStmt = stmt
	}

	return &ast.IfStmt{Condition: conditionExpr, Then: thenStmt, Else: elseStmt}, nil
}

func (parser *Parser) expressionStatement() (ast.Stmt, error) {
	expression, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expression}, nil
}

func (parser *Parser) block() ([]ast.Stmt, error) {
	statements := []ast.Stmt{}

	for !parser.checkType(token.RCUR) && !parser.isFinished() {
		stmt, err := parser.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := parser.consume(token.RCUR, "expected '}' after block"); err != nil {
		return nil, err
	}
	return statements, nil
}

func (parser *Parser) expression() (ast.Expression, error) {
	return parser.assignment()
}

// assignment parses an assignment expression.
//
// Example:
// Input:  x = 10
// AST:    &Assign{Name: x, Value: &Literal{10}}
func (parser *Parser) assignment() (ast.Expression, error) {
	expression, err := parser.or()
	if err != nil {
		return nil, err
	}
	if parser.isMatch([]token.TokenType{token.ASSIGN}) {
		equalsToken := parser.previous()
		value, err := parser.assignment()
		if err != nil {
			return nil, err
		}
		switch v := expression.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: v.Name, Value: value}, nil
		default:
			return nil, createNonSyncingError(equalsToken.Span, "invalid assignment target")
		}
	}

	return expression, nil
}

func (parser *Parser) or() (ast.Expression, error) {
	expr, err := parser.and()
	if err != nil {
		return nil, err
	}
	for parser.isMatch([]token.TokenType{token.OR}) {
		op := parser.previous()
		rightExpr, err := parser.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: rightExpr}
	}
	return expr, nil
}

func (parser *Parser) and() (ast.Expression, error) {
	expr, err := parser.equality()
	if err != nil {
		return nil, err
	}
	for parser.isMatch([]token.TokenType{token.AND}) {
		op := parser.previous()
		rightExpr, err := parser.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: rightExpr}
	}
	return expr, nil
}

func (parser *Parser) equality() (ast.Expression, error) {
	exp, err := parser.comparison()
	if err != nil {
		return nil, err
	}
	for parser.isMatch(equalityTokenTypes) {
		operator := parser.previous()
		right, err := parser.comparison()
		if err != nil {
			return nil, err
		}
		exp = &ast.Binary{Left: exp, Operator: operator, Right: right}
	}
	return exp, nil
}

func (parser *Parser) comparison() (ast.Expression, error) {
	exp, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.isMatch(comparisonTokenTypes) {
		operator := parser.previous()
		right, err := parser.term()
		if err != nil {
			return nil, err
		}
		exp = &ast.Binary{Left: exp, Operator: operator, Right: right}
	}
	return exp, nil
}

func (parser *Parser) term() (ast.Expression, error) {
	exp, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.isMatch(termTokenTypes) {
		operator := parser.previous()
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		exp = &ast.Binary{Left: exp, Operator: operator, Right: right}
	}
	return exp, nil
}

func (parser *Parser) factor() (ast.Expression, error) {
	exp, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for parser.isMatch(factorExpressionTypes) {
		operator := parser.previous()
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		exp = &ast.Binary{Left: exp, Operator: operator, Right: right}
	}
	return exp, nil
}

func (parser *Parser) unary() (ast.Expression, error) {
	if parser.isMatch(unaryExpressionTypes) {
		operator := parser.previous()
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return parser.call()
}

// call parses a primary expression followed by zero or more call
// suffixes, e.g. "f(1)(2)".
func (parser *Parser) call() (ast.Expression, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}

	for parser.isMatch([]token.TokenType{token.LPA}) {
		expr, err = parser.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (parser *Parser) finishCall(callee ast.Expression) (ast.Expression, error) {
	args := []ast.Expression{}
	if !parser.checkType(token.RPA) {
		for {
			if len(args) >= maxCallArgs {
				currentToken := parser.peek()
				return nil, createNonSyncingError(currentToken.Span, fmt.Sprintf("can't have more than %d arguments", maxCallArgs))
			}
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !parser.isMatch([]token.TokenType{token.COMMA}) {
				break
			}
		}
	}
	rparen, err := parser.consume(token.RPA, "expected ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, RParen: rparen, Args: args}, nil
}

// primary parses the most basic forms of expressions: literals,
// identifiers, and parenthesized groupings.
func (parser *Parser) primary() (ast.Expression, error) {
	if parser.isMatch([]token.TokenType{token.FALSE}) {
		return &ast.Literal{Value: false}, nil
	}
	if parser.isMatch([]token.TokenType{token.NIL}) {
		return &ast.Literal{Value: nil}, nil
	}
	if parser.isMatch([]token.TokenType{token.TRUE}) {
		return &ast.Literal{Value: true}, nil
	}
	if parser.isMatch([]token.TokenType{token.NUMBER, token.STRING}) {
		return &ast.Literal{Value: parser.previous().Literal}, nil
	}
	if parser.isMatch([]token.TokenType{token.IDENTIFIER}) {
		return &ast.Variable{Name: parser.previous()}, nil
	}
	if parser.isMatch([]token.TokenType{token.LPA}) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(token.RPA, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	}

	currentToken := parser.peek()
	return nil, CreateSyntaxError(currentToken.Span, "expected expression")
}

// consume advances past the current token if it matches tokenType,
// otherwise it returns a SyntaxError.
func (parser *Parser) consume(tokenType token.TokenType, errorMessage string) (token.Token, error) {
	if parser.checkType(tokenType) {
		return parser.advance(), nil
	}
	currentToken := parser.peek()
	return token.Token{}, CreateSyntaxError(currentToken.Span, errorMessage)
}
