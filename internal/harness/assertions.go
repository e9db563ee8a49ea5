package harness

import (
	"fmt"

	"github.com/roach88/calcdemo/internal/mathutil"
)

// EvaluateAssertions checks every assertion against trace and returns one
// message per failure. Assertions are assumed to be validated.
func EvaluateAssertions(trace []TraceEvent, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertTraceCount:
			err = assertTraceCount(trace, a)
		case AssertTraceOrder:
			err = assertTraceOrder(trace, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			failures = append(failures, fmt.Sprintf("assertion %d (%s): %v", i, a.Type, err))
		}
	}
	return failures
}

func assertTraceCount(trace []TraceEvent, a Assertion) error {
	op, err := mathutil.ParseOp(a.Op)
	if err != nil {
		return err
	}

	count := 0
	for _, ev := range trace {
		if ev.Op == string(op) {
			count++
		}
	}
	if count != a.Count {
		return fmt.Errorf("expected %s %d time(s), found %d", op, a.Count, count)
	}
	return nil
}

// assertTraceOrder checks that a.Ops is a subsequence of the trace's ops.
func assertTraceOrder(trace []TraceEvent, a Assertion) error {
	next := 0
	for _, ev := range trace {
		if next == len(a.Ops) {
			break
		}
		op, err := mathutil.ParseOp(a.Ops[next])
		if err != nil {
			return err
		}
		if ev.Op == string(op) {
			next++
		}
	}
	if next < len(a.Ops) {
		return fmt.Errorf("expected order %v, matched only the first %d", a.Ops, next)
	}
	return nil
}
