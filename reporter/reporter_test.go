package reporter

import (
	"bytes"
	"errors"
	"testing"

	"rlox/interpreter"
	"rlox/parser"
	"rlox/span"
)

func TestReportFormatsLineAndSnippet(t *testing.T) {
	source := "var = 1;"
	sp := span.Span{Start: 4, End: 5, LineStart: 1, LineEnd: 1}
	var buf bytes.Buffer
	Report(&buf, source, Diagnostic{Kind: Parsing, Span: sp, Message: "expected expression"})

	got := buf.String()
	want := "[line 1] Error '=': expected expression\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClassifySyntaxError(t *testing.T) {
	sp := span.Span{LineStart: 3}
	err := parser.CreateSyntaxError(sp, "expected ')'")
	d := Classify(Parsing, err)
	if d.Kind != Parsing || d.Message != "expected ')'" || d.Span.LineStart != 3 {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
}

func TestClassifyRuntimeErrorAlwaysRuntime(t *testing.T) {
	err := interpreter.NewRuntimeError(span.Span{LineStart: 9}, "Undefined variable.")
	d := Classify(Parsing, err)
	if d.Kind != Runtime {
		t.Errorf("expected Runtime kind regardless of caller hint, got %v", d.Kind)
	}
}

func TestClassifyOtherFallsBackToMessageOnly(t *testing.T) {
	err := errors.New("boom")
	d := Classify(Other, err)
	if d.Message != "boom" {
		t.Errorf("got %q, want boom", d.Message)
	}
}
