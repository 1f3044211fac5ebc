package token

import (
	"testing"

	"rlox/span"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		tokenType TokenType
		lexeme    string
	}{
		{"assign token", ASSIGN, "="},
		{"identifier token", IDENTIFIER, "myVar"},
		{"mult token", MULT, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.tokenType, tt.lexeme, span.Span{})
			if got.TokenType != tt.tokenType || got.Lexeme != tt.lexeme {
				t.Errorf("New() = %+v, want type %v lexeme %q", got, tt.tokenType, tt.lexeme)
			}
			if got.Literal != nil {
				t.Errorf("New() literal = %v, want nil", got.Literal)
			}
		})
	}
}

func TestNewLiteral(t *testing.T) {
	got := NewLiteral(NUMBER, "42", 42.0, span.Span{})
	if got.Literal != 42.0 {
		t.Errorf("NewLiteral() literal = %v, want 42.0", got.Literal)
	}
	if got.Lexeme != "42" {
		t.Errorf("NewLiteral() lexeme = %q, want \"42\"", got.Lexeme)
	}
}

func TestKeyWordsCoverReservedWords(t *testing.T) {
	expected := []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}
	for _, word := range expected {
		if _, ok := KeyWords[word]; !ok {
			t.Errorf("KeyWords missing reserved word %q", word)
		}
	}
}
