package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/calcdemo/internal/ir"
)

// Snapshot renders a scenario trace as canonical JSON for golden
// comparison. Calculation IDs are left out.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, ev := range result.Trace {
		trace[i] = map[string]any{
			"seq":    ev.Seq,
			"op":     ev.Op,
			"a":      ev.A,
			"b":      ev.B,
			"result": ev.Result,
		}
	}

	return ir.MarshalCanonical(map[string]any{
		"scenario_name": scenario.Name,
		"run_token":     scenario.RunToken,
		"trace":         trace,
	})
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/scenarios/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(t.Context(), scenario)
	if err != nil {
		return nil, err
	}

	snapshot, err := Snapshot(scenario, result)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, snapshot)
	return result, nil
}

// GoldenDir holds golden files beside the scenarios they snapshot, the
// layout `calcdemo test` reads.
const GoldenDir = "testdata/scenarios/golden"

// AssertGolden compares snapshot against testdata/scenarios/golden/{name}.golden.
func AssertGolden(t *testing.T, name string, snapshot []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, snapshot)
}
