package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calcdemo/internal/ir"
	"github.com/roach88/calcdemo/internal/mathutil"
)

// memRecorder keeps calculations in memory.
type memRecorder struct {
	calcs []ir.Calculation
	err   error
}

func (m *memRecorder) WriteCalculation(_ context.Context, calc ir.Calculation) error {
	if m.err != nil {
		return m.err
	}
	m.calcs = append(m.calcs, calc)
	return nil
}

func TestCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	calc := New("run-1")

	sum, err := calc.Calculate(ctx, mathutil.OpAdd, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(8), sum.Result)
	assert.Equal(t, int64(1), sum.Seq)
	assert.Equal(t, "run-1", sum.RunToken)
	assert.Equal(t, "add", sum.Op)
	wantID, err := ir.CalculationID("run-1", "add", 5, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, wantID, sum.ID)

	product, err := calc.Calculate(ctx, mathutil.OpMultiply, -2, 5)
	require.NoError(t, err)
	assert.Equal(t, int32(-10), product.Result)
	assert.Equal(t, int64(2), product.Seq)
}

func TestCalculator_Wraps(t *testing.T) {
	calc := New("run-1")

	got, err := calc.Calculate(context.Background(), mathutil.OpAdd, math.MaxInt32, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), got.Result)
}

func TestCalculator_InvalidOp(t *testing.T) {
	calc := New("run-1")

	_, err := calc.Calculate(context.Background(), mathutil.Op("divide"), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, mathutil.ErrUnknownOp)

	// A rejected op does not consume a seq.
	got, err := calc.Calculate(context.Background(), mathutil.OpAdd, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Seq)
}

func TestCalculator_WithClock(t *testing.T) {
	calc := New("run-1", WithClock(NewClockAt(41)))
	assert.Equal(t, int64(41), calc.Seq())

	got, err := calc.Calculate(context.Background(), mathutil.OpAdd, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Seq)
	assert.Equal(t, int64(42), calc.Seq())
}

func TestCalculator_WithRecorder(t *testing.T) {
	rec := &memRecorder{}
	calc := New("run-1", WithRecorder(rec))

	first, err := calc.Calculate(context.Background(), mathutil.OpAdd, 5, 3)
	require.NoError(t, err)
	second, err := calc.Calculate(context.Background(), mathutil.OpMultiply, 5, 3)
	require.NoError(t, err)

	require.Len(t, rec.calcs, 2)
	assert.Equal(t, first, rec.calcs[0])
	assert.Equal(t, second, rec.calcs[1])
}

func TestCalculator_RecorderError(t *testing.T) {
	boom := errors.New("disk full")
	calc := New("run-1", WithRecorder(&memRecorder{err: boom}))

	_, err := calc.Calculate(context.Background(), mathutil.OpAdd, 5, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestCalculator_SameInputsSameRecords(t *testing.T) {
	run := func() []ir.Calculation {
		calc := New("run-fixed")
		var out []ir.Calculation
		for _, step := range []struct {
			op   mathutil.Op
			a, b int32
		}{
			{mathutil.OpAdd, 5, 3},
			{mathutil.OpMultiply, 0, 5},
			{mathutil.OpAdd, -2, -3},
		} {
			c, err := calc.Calculate(context.Background(), step.op, step.a, step.b)
			require.NoError(t, err)
			out = append(out, c)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestVerify(t *testing.T) {
	calc, err := New("run-1").Calculate(context.Background(), mathutil.OpMultiply, 5, 3)
	require.NoError(t, err)

	require.NoError(t, Verify(calc))
}

func TestVerify_ResultMismatch(t *testing.T) {
	calc, err := New("run-1").Calculate(context.Background(), mathutil.OpMultiply, 5, 3)
	require.NoError(t, err)

	calc.Result = 16
	err = Verify(calc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonDeterministic)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "result", mismatch.Field)
	assert.Equal(t, "15", mismatch.Want)
	assert.Equal(t, "16", mismatch.Got)
}

func TestVerify_IDMismatch(t *testing.T) {
	calc, err := New("run-1").Calculate(context.Background(), mathutil.OpAdd, 5, 3)
	require.NoError(t, err)

	calc.Seq = 7
	err = Verify(calc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonDeterministic)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "id", mismatch.Field)
}

func TestVerify_UnknownOp(t *testing.T) {
	err := Verify(ir.Calculation{ID: "x", Op: "divide"})
	require.Error(t, err)
	assert.ErrorIs(t, err, mathutil.ErrUnknownOp)
	assert.NotErrorIs(t, err, ErrNonDeterministic)
}
