package harness

import (
	"context"
	"fmt"

	"github.com/roach88/calcdemo/internal/engine"
	"github.com/roach88/calcdemo/internal/mathutil"
	"github.com/roach88/calcdemo/internal/store"
)

// Run executes a scenario and returns its result.
//
// Execution flow:
//  1. Open a fresh in-memory journal
//  2. Evaluate every step with a calculator bound to the scenario's run token
//  3. Check step expectations
//  4. Read the trace back from the journal and evaluate assertions
//
// The returned error covers infrastructure failures only; failed
// expectations are reported through Result.
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	calc := engine.New(scenario.RunToken, engine.WithRecorder(st))
	result := NewResult()

	for i, step := range scenario.Steps {
		op, err := mathutil.ParseOp(step.Op)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		got, err := calc.Calculate(ctx, op, step.A, step.B)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		if step.Expect != nil && *step.Expect != got.Result {
			result.AddError(fmt.Sprintf("step %d (%d %s %d): expected %d, got %d",
				i, step.A, op.Symbol(), step.B, *step.Expect, got.Result))
		}
	}

	journaled, err := st.ReadRun(ctx, scenario.RunToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	for _, c := range journaled {
		result.Trace = append(result.Trace, TraceEvent{
			Seq:    c.Seq,
			Op:     c.Op,
			A:      c.A,
			B:      c.B,
			Result: c.Result,
		})
	}

	for _, msg := range EvaluateAssertions(result.Trace, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}
