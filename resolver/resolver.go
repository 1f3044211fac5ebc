// Package resolver implements the static scope-depth pass that runs
// between parsing and tree-walk evaluation. It never raises errors of
// its own; an unresolved reference simply falls through to the
// evaluator's dynamic global lookup (see interpreter.Environment.Get).
package resolver

import "rlox/ast"

// Resolver walks a parsed program once and records, for every Variable
// and Assign expression, how many environment frames separate the
// reference from the scope that declares it. The evaluator consults
// this table instead of walking the environment chain by name.
type Resolver struct {
	scopes []map[string]bool
	locals map[ast.Expression]int
}

// New creates a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{
		locals: make(map[ast.Expression]int),
	}
}

// Resolve walks every statement and returns the expression -> depth
// table. Names never found in any tracked scope are left out of the
// table entirely: that is how a reference ends up resolved dynamically
// against the globals, which is what lets a REPL line refer to a name
// defined on an earlier line the resolver never saw in the same pass.
func Resolve(statements []ast.Stmt) map[ast.Expression]int {
	r := New()
	r.resolveStatements(statements)
	return r.locals
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	stmt.Accept(r)
}

func (r *Resolver) resolveExpr(expr ast.Expression) {
	if expr == nil {
		return
	}
	expr.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal walks the scope stack innermost-to-outermost looking for
// name, and if found records how many hops separate expr from it.
// Nothing is recorded when the name is not found in any tracked scope.
func (r *Resolver) resolveLocal(expr ast.Expression, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(stmt *ast.FunctionStmt) {
	r.beginScope()
	for _, param := range stmt.Params {
		r.declare(param.Lexeme)
	}
	r.resolveStatements(stmt.Body)
	r.endScope()
}

// --- StmtVisitor ---

func (r *Resolver) VisitExpressionStmt(stmt *ast.ExpressionStmt) any {
	r.resolveExpr(stmt.Expression)
	return nil
}

func (r *Resolver) VisitPrintStmt(stmt *ast.PrintStmt) any {
	r.resolveExpr(stmt.Expression)
	return nil
}

func (r *Resolver) VisitVarStmt(stmt *ast.VarStmt) any {
	// The initializer is resolved before the name is declared, so
	// "var a = a;" resolves the right-hand "a" against an enclosing
	// scope rather than the not-yet-declared local.
	r.resolveExpr(stmt.Initializer)
	r.declare(stmt.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitBlockStmt(stmt *ast.BlockStmt) any {
	r.beginScope()
	r.resolveStatements(stmt.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitIfStmt(stmt *ast.IfStmt) any {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Then)
	if stmt.Else != nil {
		r.resolveStmt(stmt.Else)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(stmt *ast.WhileStmt) any {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
	return nil
}

func (r *Resolver) VisitFunctionStmt(stmt *ast.FunctionStmt) any {
	r.declare(stmt.Name.Lexeme)
	r.resolveFunction(stmt)
	return nil
}

func (r *Resolver) VisitReturnStmt(stmt *ast.ReturnStmt) any {
	r.resolveExpr(stmt.Value)
	return nil
}

// --- ExpressionVisitor ---

func (r *Resolver) VisitBinary(expr *ast.Binary) any {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil
}

func (r *Resolver) VisitUnary(expr *ast.Unary) any {
	r.resolveExpr(expr.Right)
	return nil
}

func (r *Resolver) VisitLiteral(expr *ast.Literal) any {
	return nil
}

func (r *Resolver) VisitGrouping(expr *ast.Grouping) any {
	r.resolveExpr(expr.Expression)
	return nil
}

func (r *Resolver) VisitVariableExpression(expr *ast.Variable) any {
	r.resolveLocal(expr, expr.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitAssignExpression(expr *ast.Assign) any {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitLogicalExpression(expr *ast.Logical) any {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil
}

func (r *Resolver) VisitCall(expr *ast.Call) any {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Args {
		r.resolveExpr(arg)
	}
	return nil
}
