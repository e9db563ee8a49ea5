package store

import (
	"context"
	"fmt"

	"github.com/roach88/calcdemo/internal/ir"
)

// WriteCalculation appends a calculation to the journal.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - rewriting the same
// record is silently ignored. A different record at an occupied
// (run_token, seq) position is a constraint error.
func (s *Store) WriteCalculation(ctx context.Context, calc ir.Calculation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations
		(id, run_token, seq, op, a, b, result, record_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		calc.ID,
		calc.RunToken,
		calc.Seq,
		calc.Op,
		calc.A,
		calc.B,
		calc.Result,
		ir.RecordVersion,
	)
	if err != nil {
		return fmt.Errorf("write calculation: %w", err)
	}

	return nil
}
