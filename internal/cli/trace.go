package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calcdemo/internal/ir"
	"github.com/roach88/calcdemo/internal/mathutil"
	"github.com/roach88/calcdemo/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	RunToken string
	Op       string
	ID       string
}

// TraceRun lists one run's calculations.
type TraceRun struct {
	RunToken     string           `json:"run_token"`
	Calculations []ir.Calculation `json:"calculations"`
}

// TraceResult is the trace command's output.
type TraceResult struct {
	Runs    []TraceRun `json:"runs"`
	verbose bool
}

func (r TraceResult) String() string {
	if len(r.Runs) == 0 {
		return "No calculations found."
	}

	var b strings.Builder
	for i, run := range r.Runs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Run: %s\n", run.RunToken)
		for _, c := range run.Calculations {
			fmt.Fprintf(&b, "  [%d] %s", c.Seq, formatCalculation(c))
			if r.verbose {
				fmt.Fprintf(&b, "  (%s)", c.ID)
			}
			b.WriteByte('\n')
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "List journaled calculations",
		Long: `List journaled calculations grouped by run, in seq order.

Examples:
  calcdemo trace --db ./calcdemo.db
  calcdemo trace --db ./calcdemo.db --run 0192f4c1-... --op multiply
  calcdemo trace --db ./calcdemo.db --id df72e4ff71bb...
  calcdemo trace --db ./calcdemo.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunToken, "run", "", "show a specific run only")
	cmd.Flags().StringVar(&opts.Op, "op", "", "show only this operation (add|multiply)")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show a single calculation by ID")
	cmd.MarkFlagsMutuallyExclusive("id", "run")
	cmd.MarkFlagsMutuallyExclusive("id", "op")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := newFormatter(opts.RootOptions, cmd)

	var filter mathutil.Op
	if opts.Op != "" {
		op, err := mathutil.ParseOp(opts.Op)
		if err != nil {
			return commandError(out, ErrCodeInvalidFlag, opts.Op, WrapExitError(ExitCommandError, "invalid --op", err))
		}
		filter = op
	}

	st, err := openExistingJournal(ctx, out, opts.Database)
	if err != nil {
		return err
	}
	defer closeJournal(st)

	if opts.ID != "" {
		return traceCalculation(ctx, out, st, opts)
	}

	runs, err := loadRuns(ctx, out, st, opts.RunToken)
	if err != nil {
		return err
	}

	result := TraceResult{Runs: make([]TraceRun, 0, len(runs)), verbose: opts.Verbose}
	for _, r := range runs {
		run := TraceRun{RunToken: r.token, Calculations: make([]ir.Calculation, 0, len(r.calcs))}
		for _, c := range r.calcs {
			if filter != "" && c.Op != string(filter) {
				continue
			}
			run.Calculations = append(run.Calculations, c)
		}
		if len(run.Calculations) > 0 {
			result.Runs = append(result.Runs, run)
		}
	}

	return out.Success(result)
}

// traceCalculation shows the single calculation named by --id.
func traceCalculation(ctx context.Context, out *OutputFormatter, st *store.Store, opts *TraceOptions) error {
	c, err := st.GetCalculation(ctx, opts.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return commandError(out, ErrCodeNoRecord, opts.ID, NewExitError(ExitCommandError, fmt.Sprintf("calculation not found: %s", opts.ID)))
	}
	if err != nil {
		return commandError(out, ErrCodeDatabase, opts.ID, WrapExitError(ExitCommandError, "failed to read calculation", err))
	}

	return out.Success(TraceResult{
		Runs:    []TraceRun{{RunToken: c.RunToken, Calculations: []ir.Calculation{c}}},
		verbose: opts.Verbose,
	})
}
