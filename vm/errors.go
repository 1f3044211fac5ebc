package vm

import "fmt"

// RuntimeError is a fatal error raised while executing a chunk: stack
// underflow, or an operand of the wrong type reaching an arithmetic
// opcode.
type RuntimeError struct {
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("VM runtime error: %s", e.Message)
}
