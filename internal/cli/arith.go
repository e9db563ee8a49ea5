package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/calcdemo/internal/engine"
	"github.com/roach88/calcdemo/internal/ir"
	"github.com/roach88/calcdemo/internal/mathutil"
	"github.com/roach88/calcdemo/internal/store"
)

// ArithOptions holds flags for the add and multiply commands.
type ArithOptions struct {
	*RootOptions
	Op       mathutil.Op
	Database string
	RunToken string // optional - append to this run

	// RunGenerator overrides the run token generator (for testing).
	RunGenerator engine.RunTokenGenerator
}

// calcOutput renders a single calculation in text mode.
type calcOutput struct {
	ir.Calculation
}

func (c calcOutput) String() string {
	return formatCalculation(c.Calculation)
}

// NewArithCommand creates the command for one operation ("add" or
// "multiply").
func NewArithCommand(rootOpts *RootOptions, name string) *cobra.Command {
	op, err := mathutil.ParseOp(name)
	if err != nil {
		panic(fmt.Sprintf("cli: %v", err))
	}
	opts := &ArithOptions{RootOptions: rootOpts, Op: op}

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <a> <b>", op),
		Short: fmt.Sprintf("Print a %s b for int32 operands", op.Symbol()),
		Long: fmt.Sprintf(`Evaluate a %s b. Operands are int32; results wrap on overflow.

Use -- before negative operands so they are not read as flags.

Examples:
  calcdemo %s 5 3
  calcdemo %s -- -2 5
  calcdemo %s 5 3 --db ./calcdemo.db --format json
  calcdemo %s 5 3 --db ./calcdemo.db --run 0192f4c1-...`, op.Symbol(), op, op, op, op),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "journal the calculation to this SQLite database")
	cmd.Flags().StringVar(&opts.RunToken, "run", "", "append to this run instead of starting a new one (requires --db)")

	return cmd
}

func runArith(opts *ArithOptions, rawA, rawB string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := newFormatter(opts.RootOptions, cmd)

	a, err := parseOperand(out, rawA)
	if err != nil {
		return err
	}
	b, err := parseOperand(out, rawB)
	if err != nil {
		return err
	}

	var st *store.Store
	if opts.Database != "" {
		st, err = openJournal(ctx, out, opts.Database)
		if err != nil {
			return err
		}
		defer closeJournal(st)
	}

	calc, err := newCalculator(ctx, out, opts.RunGenerator, st, opts.RunToken)
	if err != nil {
		return err
	}
	c, err := calc.Calculate(ctx, opts.Op, a, b)
	if err != nil {
		return commandError(out, ErrCodeDatabase, nil, WrapExitError(ExitCommandError, "calculation failed", err))
	}

	return out.Success(calcOutput{c})
}

// parseOperand parses a base-10 int32.
func parseOperand(out *OutputFormatter, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, commandError(out, ErrCodeInvalidOperand, s,
			WrapExitError(ExitCommandError, fmt.Sprintf("invalid operand %q (want an int32)", s), err))
	}
	return int32(v), nil
}
