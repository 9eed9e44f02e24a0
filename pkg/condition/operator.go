package condition

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/formtree"
)

// Operator is a comparison between two operands.
type Operator string

const (
	Eq  Operator = "=="
	Neq Operator = "!="
	Gt  Operator = ">"
	Gte Operator = ">="
	Lt  Operator = "<"
	Lte Operator = "<="
)

// ParseOperator validates an operator token.
func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.TrimSpace(s))
	switch op {
	case Eq, Neq, Gt, Gte, Lt, Lte:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// Compare applies op to a and b.
//
// When both operands coerce to numbers they compare numerically, so "80" == 80.
// Otherwise == and != use structural equality, where nil equals only nil.
// Ordering operators compare two strings lexicographically and are false for
// every other non-numeric pair.
func Compare(a, b any, op Operator) bool {
	x, xok := formtree.AsNumber(a)
	y, yok := formtree.AsNumber(b)
	if xok && yok {
		switch op {
		case Eq:
			return x == y
		case Neq:
			return x != y
		case Gt:
			return x > y
		case Gte:
			return x >= y
		case Lt:
			return x < y
		case Lte:
			return x <= y
		}
		return false
	}

	switch op {
	case Eq:
		return formtree.Equal(a, b)
	case Neq:
		return !formtree.Equal(a, b)
	}

	s, sok := a.(string)
	t, tok := b.(string)
	if !sok || !tok {
		return false
	}
	switch op {
	case Gt:
		return s > t
	case Gte:
		return s >= t
	case Lt:
		return s < t
	case Lte:
		return s <= t
	}
	return false
}
