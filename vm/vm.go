package vm

import (
	"fmt"

	"rlox/compiler"
)

// VM is a stack machine that executes a single compiler.Chunk. It has
// no call stack or globals of its own - the opcode set it currently
// understands covers only arithmetic and a single top-level Return, so
// one VM instance executes exactly one chunk to completion.
type VM struct {
	chunk *compiler.Chunk
	stack Stack
	ip    int
}

// New creates a VM over chunk, ready to Run from its first instruction.
func New(chunk *compiler.Chunk) *VM {
	return &VM{chunk: chunk}
}

// Run fetches, decodes, and executes instructions until an OpReturn
// pops and returns the chunk's result, or the instruction stream is
// exhausted (which halts cleanly and returns nil). A stack underflow or
// a type mismatch on an arithmetic opcode is a fatal RuntimeError.
func (vm *VM) Run() (any, error) {
	for vm.ip < len(vm.chunk.Code) {
		ins, err := compiler.Decode(vm.chunk.Code, vm.ip)
		if err != nil {
			return nil, RuntimeError{Message: err.Error()}
		}
		vm.ip += ins.Width

		switch ins.Op {
		case compiler.OpNoOp:
			// nothing

		case compiler.OpConstant:
			if ins.Operand < 0 || ins.Operand >= len(vm.chunk.Constants) {
				return nil, RuntimeError{Message: fmt.Sprintf("constant index %d out of range", ins.Operand)}
			}
			vm.stack.Push(vm.chunk.Constants[ins.Operand])

		case compiler.OpNeg:
			a, ok := vm.pop()
			if !ok {
				return nil, vm.underflow()
			}
			n, isNum := a.(float64)
			if !isNum {
				return nil, RuntimeError{Message: "operand to unary '-' must be a number"}
			}
			vm.stack.Push(-n)

		case compiler.OpAdd:
			b, a, ok := vm.pop2()
			if !ok {
				return nil, vm.underflow()
			}
			result, err := addValues(a, b)
			if err != nil {
				return nil, err
			}
			vm.stack.Push(result)

		case compiler.OpSub:
			if err := vm.binaryNumeric(func(a, b float64) float64 { return a - b }); err != nil {
				return nil, err
			}

		case compiler.OpMul:
			if err := vm.binaryNumeric(func(a, b float64) float64 { return a * b }); err != nil {
				return nil, err
			}

		case compiler.OpDiv:
			if err := vm.binaryNumeric(func(a, b float64) float64 { return a / b }); err != nil {
				return nil, err
			}

		case compiler.OpReturn:
			v, ok := vm.pop()
			if !ok {
				return nil, vm.underflow()
			}
			return v, nil

		default:
			return nil, RuntimeError{Message: fmt.Sprintf("unhandled opcode %v", ins.Op)}
		}
	}
	return nil, nil
}

func (vm *VM) pop() (any, bool) {
	return vm.stack.Pop()
}

// pop2 pops the top two values off the stack in operand order: b was
// pushed last (the right-hand operand), a was pushed before it.
func (vm *VM) pop2() (b, a any, ok bool) {
	b, okB := vm.stack.Pop()
	a, okA := vm.stack.Pop()
	return b, a, okA && okB
}

func (vm *VM) underflow() error {
	return RuntimeError{Message: "stack underflow"}
}

func (vm *VM) binaryNumeric(op func(a, b float64) float64) error {
	b, a, ok := vm.pop2()
	if !ok {
		return vm.underflow()
	}
	an, aOk := a.(float64)
	bn, bOk := b.(float64)
	if !aOk || !bOk {
		return RuntimeError{Message: "operands must be numbers"}
	}
	vm.stack.Push(op(an, bn))
	return nil
}

// addValues implements OpAdd's overload: Number+Number or
// String+String, matching the tree-walk evaluator's "+" semantics.
func addValues(a, b any) (any, error) {
	if an, ok := a.(float64); ok {
		if bn, ok := b.(float64); ok {
			return an + bn, nil
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as + bs, nil
		}
	}
	return nil, RuntimeError{Message: "operands to '+' must be two numbers or two strings"}
}
