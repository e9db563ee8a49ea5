package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, int32(8), Add(5, 3))
	assert.Equal(t, int32(0), Add(-1, 1))
	assert.Equal(t, int32(-5), Add(-2, -3))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, int32(15), Multiply(5, 3))
	assert.Equal(t, int32(0), Multiply(0, 5))
	assert.Equal(t, int32(-10), Multiply(-2, 5))
}

// samples covers signs, zero, one and the int32 extremes.
var samples = []int32{
	0, 1, -1, 2, -2, 3, 5, 7, -13, 100, -1000, 46340, -46341,
	math.MaxInt32, math.MinInt32, math.MaxInt32 - 1, math.MinInt32 + 1,
}

func TestCommutativity(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, Add(a, b), Add(b, a), "Add(%d, %d)", a, b)
			assert.Equal(t, Multiply(a, b), Multiply(b, a), "Multiply(%d, %d)", a, b)
		}
	}
}

func TestIdentity(t *testing.T) {
	for _, a := range samples {
		assert.Equal(t, a, Add(a, 0), "Add(%d, 0)", a)
		assert.Equal(t, a, Multiply(a, 1), "Multiply(%d, 1)", a)
		assert.Equal(t, int32(0), Multiply(a, 0), "Multiply(%d, 0)", a)
	}
}

func TestMatchesWideArithmetic(t *testing.T) {
	small := []int32{0, 1, -1, 9, -9, 1000, -1000, 46340, -46340}
	for _, a := range small {
		for _, b := range small {
			assert.Equal(t, int64(a)+int64(b), int64(Add(a, b)))
			assert.Equal(t, int64(a)*int64(b), int64(Multiply(a, b)))
		}
	}
}

func TestOverflowWraps(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"add max+1", Add(math.MaxInt32, 1), math.MinInt32},
		{"add min-1", Add(math.MinInt32, -1), math.MaxInt32},
		{"add max+max", Add(math.MaxInt32, math.MaxInt32), -2},
		{"multiply max*2", Multiply(math.MaxInt32, 2), -2},
		{"multiply min*-1", Multiply(math.MinInt32, -1), math.MinInt32},
		{"multiply 65536*65536", Multiply(65536, 65536), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
