package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calcdemo/internal/engine"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
	RunToken string // optional - specific run only
}

// ReplayRunResult holds the replay result for a single run.
type ReplayRunResult struct {
	RunToken      string   `json:"run_token"`
	Calculations  int      `json:"calculations"`
	Deterministic bool     `json:"deterministic"`
	Mismatches    []string `json:"mismatches,omitempty"`
}

// ReplayResult holds the overall replay result.
type ReplayResult struct {
	Runs             []ReplayRunResult `json:"runs"`
	TotalRuns        int               `json:"total_runs"`
	AllDeterministic bool              `json:"all_deterministic"`
	verbose          bool
}

func (r ReplayResult) String() string {
	if r.TotalRuns == 0 {
		return "No runs found in database."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Replay Summary: %d run(s)\n\n", r.TotalRuns)
	for _, run := range r.Runs {
		status := "✓"
		if !run.Deterministic {
			status = "✗"
		}
		fmt.Fprintf(&b, "%s Run: %s\n", status, run.RunToken)
		fmt.Fprintf(&b, "  Calculations: %d\n", run.Calculations)
		if !run.Deterministic {
			fmt.Fprintln(&b, "  Warning: Non-deterministic replay detected!")
			if r.verbose {
				for _, m := range run.Mismatches {
					fmt.Fprintf(&b, "    %s\n", m)
				}
			}
		}
		fmt.Fprintln(&b)
	}

	if r.AllDeterministic {
		b.WriteString("✓ All runs verified deterministic")
	} else {
		b.WriteString("✗ Determinism verification failed")
	}
	return b.String()
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Recompute journaled calculations and verify determinism",
		Long: `Re-read every journaled calculation, recompute its ID and result from
the stored operands, and report any calculation that no longer matches.

Exit codes:
  0 - All runs are deterministic
  1 - Determinism verification failed (differences detected)
  2 - Command error (database not found, etc.)

Examples:
  calcdemo replay --db ./calcdemo.db
  calcdemo replay --db ./calcdemo.db --run 0192f4c1-...
  calcdemo replay --db ./calcdemo.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunToken, "run", "", "replay a specific run only")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := newFormatter(opts.RootOptions, cmd)

	st, err := openExistingJournal(ctx, out, opts.Database)
	if err != nil {
		return err
	}
	defer closeJournal(st)

	runs, err := loadRuns(ctx, out, st, opts.RunToken)
	if err != nil {
		return err
	}

	result := ReplayResult{
		Runs:             make([]ReplayRunResult, 0, len(runs)),
		TotalRuns:        len(runs),
		AllDeterministic: true,
		verbose:          opts.Verbose,
	}

	for _, r := range runs {
		run, err := replayRun(r)
		if err != nil {
			return commandError(out, ErrCodeDatabase, r.token, WrapExitError(ExitCommandError, fmt.Sprintf("failed to replay run %s", r.token), err))
		}
		result.Runs = append(result.Runs, run)
		if !run.Deterministic {
			result.AllDeterministic = false
		}
	}

	if result.AllDeterministic {
		return out.Success(result)
	}

	if err := out.Report(result, &CLIError{
		Code:    "E_DETERMINISM",
		Message: "determinism verification failed",
	}); err != nil {
		return err
	}
	return NewExitError(ExitFailure, "determinism verification failed")
}

// replayRun verifies every calculation of a run.
func replayRun(r journalRun) (ReplayRunResult, error) {
	run := ReplayRunResult{
		RunToken:      r.token,
		Calculations:  len(r.calcs),
		Deterministic: true,
	}

	var prev int64
	for _, c := range r.calcs {
		if c.Seq <= prev {
			run.Deterministic = false
			run.Mismatches = append(run.Mismatches, fmt.Sprintf("seq %d is not after %d", c.Seq, prev))
		}
		prev = c.Seq

		if err := engine.Verify(c); err != nil {
			if !errors.Is(err, engine.ErrNonDeterministic) {
				return ReplayRunResult{}, err
			}
			run.Deterministic = false
			run.Mismatches = append(run.Mismatches, err.Error())
		}
	}

	return run, nil
}
