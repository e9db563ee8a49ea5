package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/calcdemo/internal/ir"
)

const selectCalculation = `
	SELECT id, run_token, seq, op, a, b, result
	FROM calculations
`

// ReadRun returns all calculations for a run token, ordered by
// seq ASC, id COLLATE BINARY ASC.
//
// Returns an empty slice (not nil) if the run has no records.
func (s *Store) ReadRun(ctx context.Context, runToken string) ([]ir.Calculation, error) {
	rows, err := s.db.QueryContext(ctx, selectCalculation+`
		WHERE run_token = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, runToken)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	calcs := []ir.Calculation{}
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}

	return calcs, nil
}

// GetCalculation returns a calculation by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) GetCalculation(ctx context.Context, id string) (ir.Calculation, error) {
	row := s.db.QueryRowContext(ctx, selectCalculation+`WHERE id = ?`, id)
	calc, err := scanCalculation(row)
	if err == sql.ErrNoRows {
		return ir.Calculation{}, err
	}
	if err != nil {
		return ir.Calculation{}, fmt.Errorf("get calculation: %w", err)
	}
	return calc, nil
}

// ListRunTokens returns every distinct run token ordered
// COLLATE BINARY ASC. UUIDv7 tokens therefore list oldest first.
func (s *Store) ListRunTokens(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT run_token
		FROM calculations
		ORDER BY run_token COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query run tokens: %w", err)
	}
	defer rows.Close()

	tokens := []string{}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("scan run token: %w", err)
		}
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run tokens: %w", err)
	}

	return tokens, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(sc scanner) (ir.Calculation, error) {
	var calc ir.Calculation
	err := sc.Scan(&calc.ID, &calc.RunToken, &calc.Seq, &calc.Op, &calc.A, &calc.B, &calc.Result)
	if err == sql.ErrNoRows {
		return ir.Calculation{}, err
	}
	if err != nil {
		return ir.Calculation{}, fmt.Errorf("scan calculation: %w", err)
	}
	return calc, nil
}
