// Package mathutil provides the arithmetic operations behind calcdemo.
//
// Operands and results are int32. Overflow wraps with two's-complement
// semantics on every platform:
//
//	Add(math.MaxInt32, 1)      == math.MinInt32
//	Multiply(math.MaxInt32, 2) == -2
//
// All functions are pure and safe for concurrent use.
package mathutil
