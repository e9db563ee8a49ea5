package mathutil

// Add returns a + b, wrapping on overflow.
func Add(a, b int32) int32 {
	return a + b
}

// Multiply returns a * b, wrapping on overflow.
func Multiply(a, b int32) int32 {
	return a * b
}
