package compiler

import "testing"

func TestAddConstantReturnsSequentialIndices(t *testing.T) {
	c := NewChunk("")
	i0, err := c.AddConstant(1.0)
	if err != nil || i0 != 0 {
		t.Fatalf("got (%d, %v), want (0, nil)", i0, err)
	}
	i1, err := c.AddConstant("two")
	if err != nil || i1 != 1 {
		t.Fatalf("got (%d, %v), want (1, nil)", i1, err)
	}
}

func TestAddConstantEnforces256Limit(t *testing.T) {
	c := NewChunk("")
	for i := 0; i < maxConstants; i++ {
		if _, err := c.AddConstant(float64(i)); err != nil {
			t.Fatalf("unexpected error adding constant %d: %v", i, err)
		}
	}
	if _, err := c.AddConstant(float64(maxConstants)); err == nil {
		t.Fatalf("expected TooManyConstants on the 257th constant")
	}
}

func TestEmitExtendsLineRunOnSameLine(t *testing.T) {
	c := NewChunk("")
	c.Emit(1, OpConstant, 0)
	c.Emit(1, OpConstant, 1)
	c.Emit(2, OpAdd)

	if len(c.Lines) != 2 {
		t.Fatalf("got %d line runs, want 2: %+v", len(c.Lines), c.Lines)
	}
	if c.Lines[0].Line != 1 || c.Lines[0].Start != 0 || c.Lines[0].End != 4 {
		t.Errorf("first run = %+v, want {1 0 4}", c.Lines[0])
	}
	if c.Lines[1].Line != 2 {
		t.Errorf("second run line = %d, want 2", c.Lines[1].Line)
	}
}

func TestLineForCoversEveryInstructionOffset(t *testing.T) {
	c := NewChunk("")
	c.Emit(1, OpConstant, 0)
	c.Emit(3, OpNeg)
	c.Emit(3, OpReturn)

	offset := 0
	for offset < len(c.Code) {
		if line := c.LineFor(offset); line == 0 {
			t.Errorf("offset %d has no covering line run", offset)
		}
		ins, err := Decode(c.Code, offset)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		offset += ins.Width
	}
}
