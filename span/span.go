// Package span records source positions so every token, AST node and
// diagnostic can point back at the exact text it came from.
package span

import "fmt"

// Span identifies a half-open range of the source together with the
// 1-based line each end falls on, so a diagnostic can be rendered without
// re-scanning the source. Start and End count runes (characters), not
// bytes, since the lexer scans a []rune copy of the source.
type Span struct {
	Start, End           int
	LineStart, LineEnd   int32
}

// Join returns the smallest Span that covers both a and b.
func Join(a, b Span) Span {
	s := Span{Start: a.Start, End: b.End, LineStart: a.LineStart, LineEnd: b.LineEnd}
	if b.Start < a.Start {
		s.Start = b.Start
	}
	if a.End > b.End {
		s.End = a.End
	}
	if b.LineStart < a.LineStart {
		s.LineStart = b.LineStart
	}
	if a.LineEnd > b.LineEnd {
		s.LineEnd = a.LineEnd
	}
	return s
}

func (s Span) String() string {
	if s.LineStart == s.LineEnd {
		return fmt.Sprintf("line %d", s.LineStart)
	}
	return fmt.Sprintf("lines %d-%d", s.LineStart, s.LineEnd)
}
