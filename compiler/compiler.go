package compiler

import (
	"rlox/ast"
	"rlox/token"
)

// Compile compiles a program into a single chunk. Only the subset of
// Lox the VM's opcode set can express is supported: a program that is a
// single expression statement made up of number/string/bool/nil
// literals, grouping, unary "-", and the four arithmetic binary
// operators. Everything else - control flow, variables, calls, print,
// logical operators, comparisons - returns an Unsupported error, since
// the opcode set documented in compiler/code.go has no instructions for
// them yet (this is the VM source-compiler gap the spec leaves open).
//
// The resulting chunk ends with OpReturn, matching the VM's contract of
// popping and returning exactly one value before halting.
func Compile(statements []ast.Stmt) (*Chunk, error) {
	if len(statements) != 1 {
		return nil, Unsupported{Construct: "a program that is not exactly one top-level statement"}
	}

	exprStmt, ok := statements[0].(*ast.ExpressionStmt)
	if !ok {
		return nil, Unsupported{Construct: "any top-level statement other than a bare expression"}
	}

	chunk := NewChunk("")
	c := &compiler{chunk: chunk}
	if err := c.compileExpr(exprStmt.Expression); err != nil {
		return nil, err
	}
	if _, err := chunk.Emit(c.lastLine, OpReturn); err != nil {
		return nil, err
	}
	return chunk, nil
}

type compiler struct {
	chunk    *Chunk
	lastLine int32
}

func (c *compiler) compileExpr(expr ast.Expression) error {
	switch e := expr.(type) {
	case *ast.Literal:
		return c.compileLiteral(e)
	case *ast.Grouping:
		return c.compileExpr(e.Expression)
	case *ast.Unary:
		return c.compileUnary(e)
	case *ast.Binary:
		return c.compileBinary(e)
	case *ast.Variable:
		return Unsupported{Construct: "variable references"}
	case *ast.Assign:
		return Unsupported{Construct: "assignment"}
	case *ast.Logical:
		return Unsupported{Construct: "logical 'and'/'or'"}
	case *ast.Call:
		return Unsupported{Construct: "function calls"}
	default:
		return Unsupported{Construct: "this expression form"}
	}
}

func (c *compiler) compileLiteral(lit *ast.Literal) error {
	idx, err := c.chunk.AddConstant(lit.Value)
	if err != nil {
		return err
	}
	_, err = c.chunk.Emit(c.lastLine, OpConstant, int(idx))
	return err
}

func (c *compiler) compileUnary(u *ast.Unary) error {
	c.lastLine = u.Operator.Span.LineStart
	if u.Operator.TokenType != token.SUB {
		return Unsupported{Construct: "unary '!'"}
	}
	if err := c.compileExpr(u.Right); err != nil {
		return err
	}
	_, err := c.chunk.Emit(c.lastLine, OpNeg)
	return err
}

func (c *compiler) compileBinary(b *ast.Binary) error {
	if err := c.compileExpr(b.Left); err != nil {
		return err
	}
	if err := c.compileExpr(b.Right); err != nil {
		return err
	}
	c.lastLine = b.Operator.Span.LineStart

	var op Opcode
	switch b.Operator.TokenType {
	case token.ADD:
		op = OpAdd
	case token.SUB:
		op = OpSub
	case token.MULT:
		op = OpMul
	case token.DIV:
		op = OpDiv
	default:
		return Unsupported{Construct: "comparison and equality operators"}
	}
	_, err := c.chunk.Emit(c.lastLine, op)
	return err
}
