package interpreter

import (
	"fmt"

	"rlox/ast"
)

// Callable is anything Lox can invoke with a Call expression: a
// user-defined function or a native builtin. Both are stored as plain
// Object values (see value.go) alongside Number/String/bool/nil.
type Callable interface {
	Arity() int
	Call(interp *TreeWalkInterpreter, args []any) (any, error)
	String() string
}

// Function is a user-defined Lox function value. It captures the
// environment frame active at the point the "fun" statement ran, which
// is what makes closures close: calling the function later pushes a new
// frame whose parent is that captured frame, not whatever frame happens
// to be current at the call site.
type Function struct {
	Declaration *ast.FunctionStmt
	Closure     *Environment
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Call runs the function body in a fresh frame parented on the
// captured closure, binds each parameter, and catches a controlReturn
// panicked by a "return" statement as the call's result. The caller's
// current environment is always restored, even if the body panics with
// a RuntimeError or an unrecognized value - this is the same
// push/pop discipline the tree-walk evaluator uses for blocks.
func (f *Function) Call(interp *TreeWalkInterpreter, args []any) (result any, err error) {
	frame := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		frame.Define(param.Lexeme, args[i])
	}

	previous := interp.env
	interp.env = frame
	defer func() {
		interp.env = previous
		if r := recover(); r != nil {
			if ret, ok := r.(controlReturn); ok {
				result = ret.value
				return
			}
			panic(r)
		}
	}()

	interp.executeStatements(f.Declaration.Body)
	return nil, nil
}

// NativeFunction wraps a Go function as a Lox-callable builtin, such as
// the globally-seeded clock().
type NativeFunction struct {
	FnName string
	ArityN int
	Fn     func(interp *TreeWalkInterpreter, args []any) (any, error)
}

func (n *NativeFunction) Arity() int { return n.ArityN }

func (n *NativeFunction) Call(interp *TreeWalkInterpreter, args []any) (any, error) {
	return n.Fn(interp, args)
}

func (n *NativeFunction) String() string {
	return fmt.Sprintf("<native fn %s>", n.FnName)
}
