package interpreter

import (
	"strconv"
	"strings"
)

// isTruthy implements Lox's truthiness convention: nil and false are
// falsy, everything else - including 0 and the empty string - is truthy.
func isTruthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox's cross-type equality: nil equals only nil,
// and values of different dynamic types are never equal (in particular
// there is no numeric/string coercion here, unlike "+").
func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return an == bn
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}
	ac, aIsCallable := a.(Callable)
	bc, bIsCallable := b.(Callable)
	if aIsCallable && bIsCallable {
		return ac == bc
	}
	return false
}

// stringify renders a Lox value the way "print" and the REPL do.
func stringify(value any) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case float64:
		return formatNumber(v)
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case Callable:
		return v.String()
	default:
		return ""
	}
}

// formatNumber prints a float64 the way Lox expects: integral values
// drop the trailing ".0" that Go's default formatting would add.
func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s
}
