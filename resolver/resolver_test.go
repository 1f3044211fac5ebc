package resolver

import (
	"testing"

	"rlox/ast"
	"rlox/lexer"
	"rlox/parser"
)

func parseProgram(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	toks, lexErrs := lexer.New(source).Scan()
	if len(lexErrs) != 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	stmts, parseErrs := parser.Make(toks).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}
	return stmts
}

func TestGlobalReferenceIsNotResolved(t *testing.T) {
	stmts := parseProgram(t, "var a = 1; print a;")
	locals := Resolve(stmts)
	if len(locals) != 0 {
		t.Fatalf("expected no resolved locals for a global reference, got %v", locals)
	}
}

func TestBlockShadowResolvesToInnerDepth(t *testing.T) {
	stmts := parseProgram(t, "var a = 1; { var a = 2; print a; } print a;")
	locals := Resolve(stmts)

	block := stmts[1].(*ast.BlockStmt)
	printInner := block.Statements[1].(*ast.PrintStmt)
	innerVar := printInner.Expression.(*ast.Variable)

	depth, ok := locals[innerVar]
	if !ok || depth != 0 {
		t.Fatalf("expected inner print to resolve at depth 0, got %v ok=%v", depth, ok)
	}

	outerPrint := stmts[2].(*ast.PrintStmt)
	outerVar := outerPrint.Expression.(*ast.Variable)
	if _, ok := locals[outerVar]; ok {
		t.Fatalf("expected outer print to fall back to global lookup, got a recorded depth")
	}
}

func TestClosureCapturesParameterAtDepth(t *testing.T) {
	stmts := parseProgram(t, `
fun make(x) {
  fun inc() { return x; }
  return inc;
}
`)
	locals := Resolve(stmts)

	makeFn := stmts[0].(*ast.FunctionStmt)
	incFn := makeFn.Body[0].(*ast.FunctionStmt)
	ret := incFn.Body[0].(*ast.ReturnStmt)
	v := ret.Value.(*ast.Variable)

	depth, ok := locals[v]
	if !ok || depth != 1 {
		t.Fatalf("expected inc's reference to x to resolve at depth 1, got %v ok=%v", depth, ok)
	}
}

func TestAssignResolvesLikeVariable(t *testing.T) {
	stmts := parseProgram(t, "{ var a = 1; a = 2; }")
	locals := Resolve(stmts)

	block := stmts[0].(*ast.BlockStmt)
	assignStmt := block.Statements[1].(*ast.ExpressionStmt)
	assign := assignStmt.Expression.(*ast.Assign)

	if depth, ok := locals[assign]; !ok || depth != 0 {
		t.Fatalf("expected assign to resolve at depth 0, got %v ok=%v", depth, ok)
	}
}
