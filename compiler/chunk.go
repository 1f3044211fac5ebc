package compiler

import "fmt"

const maxConstants = 256

// LineRun is one entry of a chunk's run-length-encoded line table: the
// byte range [Start, End) of Code that all belongs to Line.
type LineRun struct {
	Line  int32
	Start int
	End   int
}

// Chunk is a compiled unit of bytecode: its instruction stream, the
// constant pool those instructions index into, and the line table a
// disassembler uses to map an instruction offset back to source.
type Chunk struct {
	Code      []byte
	Constants []any
	Lines     []LineRun
	Label     string
}

// NewChunk creates an empty chunk, optionally labeled (e.g. with the
// function name it was compiled from, for disassembly output).
func NewChunk(label string) *Chunk {
	return &Chunk{Label: label}
}

// AddConstant appends value to the constant pool and returns its index
// as the single byte OpConstant's operand encodes. It fails once the
// pool already holds the 256 constants a one-byte index can address.
func (c *Chunk) AddConstant(value any) (byte, error) {
	if len(c.Constants) >= maxConstants {
		return 0, TooManyConstants{Limit: maxConstants}
	}
	c.Constants = append(c.Constants, value)
	return byte(len(c.Constants) - 1), nil
}

// Emit encodes op (with operands) onto the end of the code stream and
// records line against the byte range the instruction occupies. If the
// previous instruction was on the same line, this extends that line
// run's byte range rather than starting a new one, so the table holds
// one entry per run of consecutive instructions on the same line, not
// one per instruction.
func (c *Chunk) Emit(line int32, op Opcode, operands ...int) (int, error) {
	start := len(c.Code)
	code, err := Encode(c.Code, op, operands...)
	if err != nil {
		return 0, err
	}
	c.Code = code
	end := len(c.Code)

	if n := len(c.Lines); n > 0 && c.Lines[n-1].Line == line && c.Lines[n-1].End == start {
		c.Lines[n-1].End = end
	} else {
		c.Lines = append(c.Lines, LineRun{Line: line, Start: start, End: end})
	}
	return start, nil
}

// LineFor returns the source line that covers byte offset, or 0 if no
// run covers it (which should not happen for any offset Emit produced).
func (c *Chunk) LineFor(offset int) int32 {
	for _, run := range c.Lines {
		if offset >= run.Start && offset < run.End {
			return run.Line
		}
	}
	return 0
}

// Disassemble renders every instruction in the chunk as
// "<offset> line <N> <mnemonic> [operand]", one per line, prefixed by
// the chunk's label if it has one. It is a diagnostic only; the VM
// never calls it.
func (c *Chunk) Disassemble() string {
	var out []byte
	if c.Label != "" {
		out = append(out, "== "+c.Label+" ==\n"...)
	}
	offset := 0
	for offset < len(c.Code) {
		ins, err := Decode(c.Code, offset)
		if err != nil {
			out = append(out, []byte(err.Error()+"\n")...)
			break
		}
		line := c.LineFor(offset)
		out = append(out, []byte(fmt.Sprintf("%04d line %d %s\n", offset, line, ins.Disassemble()))...)
		offset += ins.Width
	}
	return string(out)
}
