package compiler

import "testing"

func TestEncodeConstant(t *testing.T) {
	code, err := Encode(nil, OpConstant, 42)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := []byte{byte(OpConstant), 42}
	if len(code) != len(want) || code[0] != want[0] || code[1] != want[1] {
		t.Errorf("got %v, want %v", code, want)
	}
}

func TestEncodeNoOperandOpcode(t *testing.T) {
	for _, op := range []Opcode{OpNoOp, OpReturn, OpNeg, OpAdd, OpSub, OpMul, OpDiv} {
		code, err := Encode(nil, op)
		if err != nil {
			t.Fatalf("Encode(%v) error: %v", op, err)
		}
		if len(code) != 1 || code[0] != byte(op) {
			t.Errorf("Encode(%v) = %v, want single byte %d", op, code, op)
		}
	}
}

func TestEncodeRejectsWrongOperandCount(t *testing.T) {
	if _, err := Encode(nil, OpConstant); err == nil {
		t.Fatalf("expected an error for OpConstant with no operand")
	}
	if _, err := Encode(nil, OpReturn, 1); err == nil {
		t.Fatalf("expected an error for OpReturn with an operand")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		op       Opcode
		operands []int
	}{
		{OpNoOp, nil},
		{OpReturn, nil},
		{OpConstant, []int{7}},
		{OpNeg, nil},
		{OpAdd, nil},
		{OpSub, nil},
		{OpMul, nil},
		{OpDiv, nil},
	} {
		code, err := Encode(nil, tt.op, tt.operands...)
		if err != nil {
			t.Fatalf("Encode(%v) error: %v", tt.op, err)
		}
		ins, err := Decode(code, 0)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if ins.Op != tt.op {
			t.Errorf("got op %v, want %v", ins.Op, tt.op)
		}
		if len(tt.operands) == 1 && ins.Operand != tt.operands[0] {
			t.Errorf("got operand %d, want %d", ins.Operand, tt.operands[0])
		}
		if ins.Width != len(code) {
			t.Errorf("got width %d, want %d", ins.Width, len(code))
		}
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	_, err := Decode([]byte{0xff}, 0)
	if _, ok := err.(UnknownOpCode); !ok {
		t.Fatalf("expected UnknownOpCode, got %v", err)
	}
}

func TestDecodeInsufficientBytes(t *testing.T) {
	_, err := Decode([]byte{byte(OpConstant)}, 0)
	if _, ok := err.(InsufficientBytes); !ok {
		t.Fatalf("expected InsufficientBytes, got %v", err)
	}
}

func TestDecodeSequence(t *testing.T) {
	var code []byte
	code, _ = Encode(code, OpConstant, 1)
	code, _ = Encode(code, OpConstant, 2)
	code, _ = Encode(code, OpAdd)
	code, _ = Encode(code, OpReturn)

	offset := 0
	var ops []Opcode
	for offset < len(code) {
		ins, err := Decode(code, offset)
		if err != nil {
			t.Fatalf("Decode at %d: %v", offset, err)
		}
		ops = append(ops, ins.Op)
		offset += ins.Width
	}
	want := []Opcode{OpConstant, OpConstant, OpAdd, OpReturn}
	if len(ops) != len(want) {
		t.Fatalf("got %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %v, want %v", i, ops[i], want[i])
		}
	}
}
