// Package reporter formats errors from every stage of the pipeline -
// lexing, parsing, resolving, and evaluation - into a single
// human-readable shape and writes them to stderr.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"rlox/interpreter"
	"rlox/parser"
	"rlox/span"
)

// Kind classifies which pipeline stage produced an error.
type Kind int

const (
	Lexing Kind = iota
	Parsing
	Pass
	Runtime
	Other
)

func (k Kind) String() string {
	switch k {
	case Lexing:
		return "Lexing"
	case Parsing:
		return "Parsing"
	case Pass:
		return "Pass"
	case Runtime:
		return "Runtime"
	default:
		return "Other"
	}
}

// Diagnostic is a single reportable failure: its taxon, the span of
// source it covers, and a human-readable message.
type Diagnostic struct {
	Kind    Kind
	Span    span.Span
	Message string
}

// Classify assigns a Kind and extracts the span/message pair from an
// error produced anywhere in the pipeline. A RuntimeError is always
// classified as Runtime; any other error keeps the caller's kind, and an
// error type it does not recognize (e.g. the lexer's plain errors) is
// reported by message only, with a zero-value span.
func Classify(kind Kind, err error) Diagnostic {
	switch e := err.(type) {
	case parser.SyntaxError:
		return Diagnostic{Kind: kind, Span: e.Span, Message: e.Message}
	case interpreter.RuntimeError:
		return Diagnostic{Kind: Runtime, Span: e.Span, Message: e.Message}
	default:
		return Diagnostic{Kind: kind, Message: err.Error()}
	}
}

// Report writes a diagnostic to w as "[line L] Error '<snippet>':
// <message>", where <snippet> is the substring of source the
// diagnostic's span covers (or empty for a zero-value span, e.g. an
// error with no source position of its own).
func Report(w io.Writer, source string, d Diagnostic) {
	snippet := snippetFor(source, d.Span)
	fmt.Fprintf(w, "[line %d] Error '%s': %s\n", d.Span.LineStart, snippet, d.Message)
}

// ReportAll reports a batch of errors of the same kind, e.g. the
// lexer's or parser's accumulated errors.
func ReportAll(w io.Writer, source string, kind Kind, errs []error) {
	for _, err := range errs {
		Report(w, source, Classify(kind, err))
	}
}

func snippetFor(source string, sp span.Span) string {
	runes := []rune(source)
	if sp.Start < 0 || sp.End > len(runes) || sp.Start > sp.End {
		return ""
	}
	snippet := string(runes[sp.Start:sp.End])
	return strings.TrimSpace(snippet)
}
