package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/calcdemo/internal/ir"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestCalculation builds a calculation with a valid content-addressed ID.
func createTestCalculation(runToken, op string, a, b, result int32, seq int64) ir.Calculation {
	return ir.Calculation{
		ID:       testCalculationID(runToken, op, a, b, seq),
		RunToken: runToken,
		Seq:      seq,
		Op:       op,
		A:        a,
		B:        b,
		Result:   result,
	}
}

func testCalculationID(runToken, op string, a, b int32, seq int64) string {
	id, err := ir.CalculationID(runToken, op, a, b, seq)
	if err != nil {
		panic(err)
	}
	return id
}
