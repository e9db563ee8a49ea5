package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/roach88/calcdemo/internal/engine"
	"github.com/roach88/calcdemo/internal/ir"
	"github.com/roach88/calcdemo/internal/store"
)

// openJournal opens (creating if needed) the SQLite journal at path.
func openJournal(ctx context.Context, out *OutputFormatter, path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, commandError(out, ErrCodeDatabase, path, WrapExitError(ExitCommandError, "failed to open database", err))
	}

	version, err := st.SchemaVersion(ctx)
	if err != nil {
		closeJournal(st)
		return nil, commandError(out, ErrCodeDatabase, path, WrapExitError(ExitCommandError, "failed to read schema version", err))
	}
	slog.Debug("journal opened", "path", path, "schema_version", version)
	return st, nil
}

// openExistingJournal opens a journal that must already exist.
func openExistingJournal(ctx context.Context, out *OutputFormatter, path string) (*store.Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, commandError(out, ErrCodeNotFound, path, NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", path)))
	}
	return openJournal(ctx, out, path)
}

func closeJournal(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}

// newCalculator creates a calculator for a fresh run. With a runToken it
// instead appends to that run, continuing after its last journaled seq;
// that needs a journal. When st is non-nil every calculation is journaled.
func newCalculator(ctx context.Context, out *OutputFormatter, gen engine.RunTokenGenerator, st *store.Store, runToken string) (*engine.Calculator, error) {
	var opts []engine.Option
	if st != nil {
		opts = append(opts, engine.WithRecorder(st))
	}

	if runToken == "" {
		if gen == nil {
			gen = engine.UUIDv7Generator{}
		}
		return engine.New(gen.Generate(), opts...), nil
	}

	if st == nil {
		return nil, commandError(out, ErrCodeInvalidFlag, nil, NewExitError(ExitCommandError, "--run requires --db"))
	}
	calcs, err := st.ReadRun(ctx, runToken)
	if err != nil {
		return nil, commandError(out, ErrCodeDatabase, runToken, WrapExitError(ExitCommandError, "failed to read run", err))
	}
	var last int64
	if n := len(calcs); n > 0 {
		last = calcs[n-1].Seq
	}
	out.VerboseLog("Appending to run %s after seq %d", runToken, last)

	opts = append(opts, engine.WithClock(engine.NewClockAt(last)))
	return engine.New(runToken, opts...), nil
}

// journalRun is one run read back from the journal.
type journalRun struct {
	token string
	calcs []ir.Calculation
}

// loadRuns reads the requested run, or every run when token is empty.
// A requested run with no records is a command error.
func loadRuns(ctx context.Context, out *OutputFormatter, st *store.Store, token string) ([]journalRun, error) {
	tokens := []string{token}
	if token == "" {
		var err error
		tokens, err = st.ListRunTokens(ctx)
		if err != nil {
			return nil, commandError(out, ErrCodeDatabase, nil, WrapExitError(ExitCommandError, "failed to list run tokens", err))
		}
	}

	runs := make([]journalRun, 0, len(tokens))
	for _, t := range tokens {
		calcs, err := st.ReadRun(ctx, t)
		if err != nil {
			return nil, commandError(out, ErrCodeDatabase, t, WrapExitError(ExitCommandError, fmt.Sprintf("failed to read run %s", t), err))
		}
		if token != "" && len(calcs) == 0 {
			return nil, commandError(out, ErrCodeNoRecord, token, NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", token)))
		}
		runs = append(runs, journalRun{token: t, calcs: calcs})
	}
	out.VerboseLog("Read %d run(s) from journal", len(runs))
	return runs, nil
}
