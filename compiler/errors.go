package compiler

import "fmt"

// UnknownOpCode is returned by Decode/Lookup when a byte does not match
// any defined opcode.
type UnknownOpCode struct {
	Tag byte
}

func (e UnknownOpCode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02x", e.Tag)
}

// InsufficientBytes is returned by Decode when fewer bytes remain in the
// stream than the opcode's encoding requires.
type InsufficientBytes struct {
	Needed    int
	Available int
}

func (e InsufficientBytes) Error() string {
	return fmt.Sprintf("insufficient bytes decoding instruction: needed %d, had %d", e.Needed, e.Available)
}

// TooManyConstants is returned by Chunk.AddConstant once a chunk already
// holds 256 constants, the most a single-byte operand can index.
type TooManyConstants struct {
	Limit int
}

func (e TooManyConstants) Error() string {
	return fmt.Sprintf("chunk already holds the maximum of %d constants", e.Limit)
}

// Unsupported is returned by the AST compiler for any construct outside
// the subset the current opcode set can express (everything beyond
// literals, grouping, unary negation, and the four arithmetic binary
// operators - see DESIGN.md for the open question this tracks).
type Unsupported struct {
	Construct string
}

func (e Unsupported) Error() string {
	return fmt.Sprintf("compiling %s to bytecode is not yet implemented", e.Construct)
}
