package interpreter

import (
	"fmt"
	"io"
	"os"
	"time"

	"rlox/ast"
	"rlox/span"
	"rlox/token"
)

// TreeWalkInterpreter evaluates a parsed program directly off the AST,
// threading a resolver-provided depth table for variable lookup and a
// chain of environment frames for scoping.
type TreeWalkInterpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expression]int
	out     io.Writer
}

// New creates an interpreter with a fresh global scope seeded with the
// clock() builtin, writing "print" output to out.
func New(out io.Writer) *TreeWalkInterpreter {
	globals := NewEnvironment(nil)
	interp := &TreeWalkInterpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expression]int),
		out:     out,
	}
	interp.defineNatives()
	return interp
}

// Make creates an interpreter that writes "print" output to stdout,
// matching the REPL and file-runner drivers' default.
func Make() *TreeWalkInterpreter {
	return New(os.Stdout)
}

func (i *TreeWalkInterpreter) defineNatives() {
	i.globals.Define("clock", &NativeFunction{
		FnName: "clock",
		ArityN: 0,
		Fn: func(_ *TreeWalkInterpreter, _ []any) (any, error) {
			return float64(time.Now().UnixMilli()), nil
		},
	})
}

// SetLocals installs the expression -> depth table produced by the
// resolver pass. Subsequent Interpret calls consult it for variable
// lookups; a REPL driver merges in a fresh table per line so that
// variables resolved in an earlier line keep their recorded depth.
func (i *TreeWalkInterpreter) SetLocals(locals map[ast.Expression]int) {
	for expr, depth := range locals {
		i.locals[expr] = depth
	}
}

// Interpret executes a program's statements. A RuntimeError reaching
// the top is returned rather than panicking further; a controlReturn
// escaping every function call means "return" appeared outside of a
// function body, which is reported the same way. Any other panic is an
// internal invariant violation and is allowed to propagate.
func (i *TreeWalkInterpreter) Interpret(statements []ast.Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case RuntimeError:
				err = v
			case controlReturn:
				err = NewRuntimeError(span.Span{}, "Invalid return statement.")
			default:
				panic(r)
			}
		}
	}()
	i.executeStatements(statements)
	return nil
}

func (i *TreeWalkInterpreter) executeStatements(statements []ast.Stmt) {
	for _, stmt := range statements {
		i.executeStmt(stmt)
	}
}

func (i *TreeWalkInterpreter) executeStmt(stmt ast.Stmt) {
	stmt.Accept(i)
}

func (i *TreeWalkInterpreter) evaluate(expr ast.Expression) any {
	return expr.Accept(i)
}

// --- Statement visitors ---

// VisitBlockStmt executes a block in a new frame nested in the current
// one. The previous frame is always restored on the way out, including
// when a panic (RuntimeError or controlReturn) unwinds through it - this
// is the single invariant every exit path here must preserve.
func (i *TreeWalkInterpreter) VisitBlockStmt(stmt *ast.BlockStmt) any {
	previous := i.env
	i.env = NewEnvironment(previous)
	defer func() { i.env = previous }()
	i.executeStatements(stmt.Statements)
	return nil
}

func (i *TreeWalkInterpreter) VisitExpressionStmt(stmt *ast.ExpressionStmt) any {
	i.evaluate(stmt.Expression)
	return nil
}

func (i *TreeWalkInterpreter) VisitIfStmt(stmt *ast.IfStmt) any {
	if isTruthy(i.evaluate(stmt.Condition)) {
		i.executeStmt(stmt.Then)
	} else if stmt.Else != nil {
		i.executeStmt(stmt.Else)
	}
	return nil
}

func (i *TreeWalkInterpreter) VisitPrintStmt(stmt *ast.PrintStmt) any {
	value := i.evaluate(stmt.Expression)
	fmt.Fprintln(i.out, stringify(value))
	return nil
}

func (i *TreeWalkInterpreter) VisitVarStmt(stmt *ast.VarStmt) any {
	var value any
	if stmt.Initializer != nil {
		value = i.evaluate(stmt.Initializer)
	}
	i.env.Define(stmt.Name.Lexeme, value)
	return nil
}

func (i *TreeWalkInterpreter) VisitWhileStmt(stmt *ast.WhileStmt) any {
	for isTruthy(i.evaluate(stmt.Condition)) {
		i.executeStmt(stmt.Body)
	}
	return nil
}

func (i *TreeWalkInterpreter) VisitFunctionStmt(stmt *ast.FunctionStmt) any {
	fn := &Function{Declaration: stmt, Closure: i.env}
	i.env.Define(stmt.Name.Lexeme, fn)
	return nil
}

func (i *TreeWalkInterpreter) VisitReturnStmt(stmt *ast.ReturnStmt) any {
	var value any
	if stmt.Value != nil {
		value = i.evaluate(stmt.Value)
	}
	panic(controlReturn{value: value})
}

// --- Expression visitors ---

func (i *TreeWalkInterpreter) VisitLiteral(expr *ast.Literal) any {
	return expr.Value
}

func (i *TreeWalkInterpreter) VisitGrouping(expr *ast.Grouping) any {
	return i.evaluate(expr.Expression)
}

func (i *TreeWalkInterpreter) VisitUnary(expr *ast.Unary) any {
	right := i.evaluate(expr.Right)
	switch expr.Operator.TokenType {
	case token.SUB:
		n, ok := right.(float64)
		if !ok {
			panic(NewRuntimeError(expr.Operator.Span, "Operand must be a number."))
		}
		return -n
	case token.BANG:
		return !isTruthy(right)
	default:
		panic(fmt.Sprintf("internal error: unsupported unary operator %q", expr.Operator.TokenType))
	}
}

func (i *TreeWalkInterpreter) VisitLogicalExpression(expr *ast.Logical) any {
	left := i.evaluate(expr.Left)
	if expr.Operator.TokenType == token.OR {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}
	return i.evaluate(expr.Right)
}

func (i *TreeWalkInterpreter) VisitBinary(expr *ast.Binary) any {
	left := i.evaluate(expr.Left)
	right := i.evaluate(expr.Right)

	switch expr.Operator.TokenType {
	case token.ADD:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs
			}
		}
		panic(NewRuntimeError(expr.Operator.Span, "Operands must be two numbers or two strings."))
	case token.SUB:
		ln, rn := i.numericOperands(expr.Operator, left, right)
		return ln - rn
	case token.MULT:
		ln, rn := i.numericOperands(expr.Operator, left, right)
		return ln * rn
	case token.DIV:
		ln, rn := i.numericOperands(expr.Operator, left, right)
		// IEEE-754 division: division by zero yields +/-Inf or NaN,
		// not a runtime error.
		return ln / rn
	case token.LARGER, token.LARGER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			// Ordering is only defined between two numbers; any other
			// pairing is "incomparable" and reported as false rather
			// than raising.
			return false
		}
		switch expr.Operator.TokenType {
		case token.LARGER:
			return ln > rn
		case token.LARGER_EQUAL:
			return ln >= rn
		case token.LESS:
			return ln < rn
		default:
			return ln <= rn
		}
	case token.EQUAL_EQUAL:
		return isEqual(left, right)
	case token.NOT_EQUAL:
		return !isEqual(left, right)
	default:
		panic(fmt.Sprintf("internal error: unsupported binary operator %q", expr.Operator.TokenType))
	}
}

func (i *TreeWalkInterpreter) numericOperands(op token.Token, left, right any) (float64, float64) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		panic(NewRuntimeError(op.Span, "Operands must be numbers."))
	}
	return ln, rn
}

func (i *TreeWalkInterpreter) VisitVariableExpression(expr *ast.Variable) any {
	value, err := i.lookUpVariable(expr.Name, expr)
	if err != nil {
		panic(err)
	}
	return value
}

func (i *TreeWalkInterpreter) lookUpVariable(name token.Token, expr ast.Expression) (any, error) {
	if depth, ok := i.locals[expr]; ok {
		return i.env.GetAt(depth, name.Lexeme), nil
	}
	return i.globals.Get(name)
}

func (i *TreeWalkInterpreter) VisitAssignExpression(expr *ast.Assign) any {
	value := i.evaluate(expr.Value)
	if depth, ok := i.locals[expr]; ok {
		i.env.AssignAt(depth, expr.Name.Lexeme, value)
		return value
	}
	if err := i.globals.Assign(expr.Name, value); err != nil {
		panic(err)
	}
	return value
}

func (i *TreeWalkInterpreter) VisitCall(expr *ast.Call) any {
	callee := i.evaluate(expr.Callee)

	args := make([]any, 0, len(expr.Args))
	for _, arg := range expr.Args {
		args = append(args, i.evaluate(arg))
	}

	fn, ok := callee.(Callable)
	if !ok {
		panic(NewRuntimeError(expr.RParen.Span, "Can only call functions and classes."))
	}
	if len(args) != fn.Arity() {
		panic(NewRuntimeError(expr.RParen.Span, fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args))))
	}

	result, err := fn.Call(i, args)
	if err != nil {
		panic(err)
	}
	return result
}
