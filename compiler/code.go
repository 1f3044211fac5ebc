// Package compiler defines the bytecode wire format shared by the
// compiler and the VM - the opcode set, the constant pool, and the
// run-length line table - plus the (currently partial) AST-to-bytecode
// compiler that produces it.
package compiler

import "fmt"

// Opcode is a single-byte instruction tag.
type Opcode byte

// The opcode set the VM currently understands. Each tag is followed by
// however many operand bytes its OpcodeDefinition declares; only
// OpConstant has one (a single byte, since a chunk holds at most 256
// constants).
const (
	OpNoOp     Opcode = 0x00
	OpReturn   Opcode = 0x01
	OpConstant Opcode = 0x02
	OpNeg      Opcode = 0x03
	OpAdd      Opcode = 0x04
	OpSub      Opcode = 0x05
	OpMul      Opcode = 0x06
	OpDiv      Opcode = 0x07
)

// OpcodeDefinition names an opcode and the width, in bytes, of each of
// its operands.
type OpcodeDefinition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]OpcodeDefinition{
	OpNoOp:     {Name: "NOOP", OperandWidths: nil},
	OpReturn:   {Name: "RETURN", OperandWidths: nil},
	OpConstant: {Name: "CONSTANT", OperandWidths: []int{1}},
	OpNeg:      {Name: "NEG", OperandWidths: nil},
	OpAdd:      {Name: "ADD", OperandWidths: nil},
	OpSub:      {Name: "SUB", OperandWidths: nil},
	OpMul:      {Name: "MUL", OperandWidths: nil},
	OpDiv:      {Name: "DIV", OperandWidths: nil},
}

// Lookup returns the definition for op, or an UnknownOpCode error.
func Lookup(op Opcode) (OpcodeDefinition, error) {
	def, ok := definitions[op]
	if !ok {
		return OpcodeDefinition{}, UnknownOpCode{Tag: byte(op)}
	}
	return def, nil
}

func (op Opcode) width() int {
	def, ok := definitions[op]
	if !ok {
		return 1
	}
	total := 1
	for _, w := range def.OperandWidths {
		total += w
	}
	return total
}

// Encode appends the tag byte for op plus its operands (one byte each,
// the only width this opcode set uses) to dst, returning the extended
// slice.
func Encode(dst []byte, op Opcode, operands ...int) ([]byte, error) {
	def, err := Lookup(op)
	if err != nil {
		return dst, err
	}
	if len(operands) != len(def.OperandWidths) {
		return dst, fmt.Errorf("opcode %s expects %d operand(s), got %d", def.Name, len(def.OperandWidths), len(operands))
	}
	dst = append(dst, byte(op))
	for idx, width := range def.OperandWidths {
		operand := operands[idx]
		switch width {
		case 1:
			if operand < 0 || operand > 0xff {
				return dst, fmt.Errorf("opcode %s operand %d out of range for a single byte", def.Name, operand)
			}
			dst = append(dst, byte(operand))
		default:
			return dst, fmt.Errorf("opcode %s has an unsupported operand width %d", def.Name, width)
		}
	}
	return dst, nil
}

// Instruction is one decoded instruction: its opcode, its (at most one)
// operand, and the total width in bytes it occupied in the stream.
type Instruction struct {
	Op      Opcode
	Operand int
	Width   int
}

// Decode reads a single instruction from code starting at offset.
func Decode(code []byte, offset int) (Instruction, error) {
	if offset >= len(code) {
		return Instruction{}, InsufficientBytes{Needed: 1, Available: len(code) - offset}
	}
	op := Opcode(code[offset])
	def, ok := definitions[op]
	if !ok {
		return Instruction{}, UnknownOpCode{Tag: byte(op)}
	}

	width := 1
	for _, w := range def.OperandWidths {
		width += w
	}
	if offset+width > len(code) {
		return Instruction{}, InsufficientBytes{Needed: width, Available: len(code) - offset}
	}

	operand := 0
	if len(def.OperandWidths) == 1 {
		operand = int(code[offset+1])
	}
	return Instruction{Op: op, Operand: operand, Width: width}, nil
}

// Disassemble renders a single decoded instruction's mnemonic and
// operand, e.g. "CONSTANT 2"; Chunk.Disassemble prefixes the offset and
// line.
func (ins Instruction) Disassemble() string {
	def, ok := definitions[ins.Op]
	if !ok {
		return fmt.Sprintf("UNKNOWN(0x%02x)", byte(ins.Op))
	}
	if len(def.OperandWidths) == 0 {
		return def.Name
	}
	return fmt.Sprintf("%s %d", def.Name, ins.Operand)
}
