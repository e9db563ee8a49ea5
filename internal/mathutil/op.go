package mathutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOp is returned by ParseOp for names it does not recognize.
var ErrUnknownOp = errors.New("unknown operation")

// Op names a binary operation.
type Op string

const (
	OpAdd      Op = "add"
	OpMultiply Op = "multiply"
)

// Ops returns the supported operations in declaration order.
func Ops() []Op {
	return []Op{OpAdd, OpMultiply}
}

// ParseOp resolves an operation name or symbol ("+", "*").
// Matching ignores case and surrounding whitespace.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OpAdd, nil
	case "multiply", "*":
		return OpMultiply, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// Valid reports whether op is one of the supported operations.
func (op Op) Valid() bool {
	return op == OpAdd || op == OpMultiply
}

// Apply evaluates op on a and b. It panics on an invalid Op; use
// ParseOp or Valid at the boundary.
func (op Op) Apply(a, b int32) int32 {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpMultiply:
		return Multiply(a, b)
	default:
		panic(fmt.Sprintf("mathutil: apply %q: %v", string(op), ErrUnknownOp))
	}
}

// Symbol returns the infix symbol used when printing op.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMultiply:
		return "*"
	default:
		return "?"
	}
}

func (op Op) String() string {
	return string(op)
}
