package vm

import "testing"

func TestStackPushPopOrder(t *testing.T) {
	var s Stack
	s.Push(1.0)
	s.Push(2.0)

	v, ok := s.Pop()
	if !ok || v != 2.0 {
		t.Fatalf("got (%v, %v), want (2.0, true)", v, ok)
	}
	v, ok = s.Pop()
	if !ok || v != 1.0 {
		t.Fatalf("got (%v, %v), want (1.0, true)", v, ok)
	}
	if !s.IsEmpty() {
		t.Fatalf("expected stack to be empty")
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("expected Pop on empty stack to report ok=false")
	}
}

func TestStackPeekDoesNotRemove(t *testing.T) {
	var s Stack
	s.Push("a")
	v, ok := s.Peek()
	if !ok || v != "a" {
		t.Fatalf("got (%v, %v), want (a, true)", v, ok)
	}
	if len(s) != 1 {
		t.Fatalf("Peek must not remove the element, len = %d", len(s))
	}
}
