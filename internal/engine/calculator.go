package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/roach88/calcdemo/internal/ir"
	"github.com/roach88/calcdemo/internal/mathutil"
)

// Recorder persists calculations. *store.Store satisfies it.
type Recorder interface {
	WriteCalculation(ctx context.Context, calc ir.Calculation) error
}

// Calculator evaluates operations for a single run.
type Calculator struct {
	runToken string
	clock    *Clock
	recorder Recorder
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock sets the run's clock. Use NewClockAt with a run's last
// journaled seq to append to that run.
func WithClock(c *Clock) Option {
	return func(calc *Calculator) {
		calc.clock = c
	}
}

// WithRecorder journals every calculation through r.
func WithRecorder(r Recorder) Option {
	return func(calc *Calculator) {
		calc.recorder = r
	}
}

// New creates a calculator for the given run token.
func New(runToken string, opts ...Option) *Calculator {
	c := &Calculator{
		runToken: runToken,
		clock:    NewClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunToken returns the token grouping this calculator's records.
func (c *Calculator) RunToken() string {
	return c.runToken
}

// Seq returns the seq of the most recent calculation, or the clock's
// starting point if nothing has been calculated yet.
func (c *Calculator) Seq() int64 {
	return c.clock.Current()
}

// Calculate evaluates op on a and b and returns the stamped record.
// The record is journaled when a Recorder is configured.
func (c *Calculator) Calculate(ctx context.Context, op mathutil.Op, a, b int32) (ir.Calculation, error) {
	if !op.Valid() {
		return ir.Calculation{}, fmt.Errorf("calculate: %w: %q", mathutil.ErrUnknownOp, string(op))
	}

	seq := c.clock.Next()
	id, err := ir.CalculationID(c.runToken, string(op), a, b, seq)
	if err != nil {
		return ir.Calculation{}, fmt.Errorf("calculate: %w", err)
	}

	calc := ir.Calculation{
		ID:       id,
		RunToken: c.runToken,
		Seq:      seq,
		Op:       string(op),
		A:        a,
		B:        b,
		Result:   op.Apply(a, b),
	}

	slog.Debug("calculated",
		"run", c.runToken,
		"seq", seq,
		"op", calc.Op,
		"a", a,
		"b", b,
		"result", calc.Result,
	)

	if c.recorder != nil {
		if err := c.recorder.WriteCalculation(ctx, calc); err != nil {
			return ir.Calculation{}, fmt.Errorf("calculate: record: %w", err)
		}
	}

	return calc, nil
}

// Verify recomputes calc from its operands. It returns an error wrapping
// ErrNonDeterministic when the ID or result differs from the journaled
// values.
func Verify(calc ir.Calculation) error {
	op, err := mathutil.ParseOp(calc.Op)
	if err != nil {
		return fmt.Errorf("verify %s: %w", shortID(calc.ID), err)
	}

	id, err := ir.CalculationID(calc.RunToken, string(op), calc.A, calc.B, calc.Seq)
	if err != nil {
		return fmt.Errorf("verify %s: %w", shortID(calc.ID), err)
	}
	if id != calc.ID {
		return &MismatchError{ID: calc.ID, Field: "id", Want: id, Got: calc.ID}
	}

	if want := op.Apply(calc.A, calc.B); want != calc.Result {
		return &MismatchError{
			ID:    calc.ID,
			Field: "result",
			Want:  strconv.FormatInt(int64(want), 10),
			Got:   strconv.FormatInt(int64(calc.Result), 10),
		}
	}

	return nil
}
