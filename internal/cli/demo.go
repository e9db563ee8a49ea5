package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calcdemo/internal/config"
	"github.com/roach88/calcdemo/internal/engine"
	"github.com/roach88/calcdemo/internal/ir"
	"github.com/roach88/calcdemo/internal/mathutil"
	"github.com/roach88/calcdemo/internal/store"
	"github.com/roach88/calcdemo/internal/textutil"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Config   string
	Database string
	RunToken string // optional - append to this run

	// RunGenerator overrides the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunGenerator engine.RunTokenGenerator
}

// DemoResult is the demo's output.
type DemoResult struct {
	Greeting     string           `json:"greeting"`
	Original     string           `json:"original"`
	Processed    string           `json:"processed"`
	RunToken     string           `json:"run_token"`
	Calculations []ir.Calculation `json:"calculations"`
}

func (r DemoResult) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, r.Greeting)
	fmt.Fprintf(&b, "Original: '%s'\n", r.Original)
	fmt.Fprintf(&b, "Processed: '%s'", r.Processed)
	for _, c := range r.Calculations {
		fmt.Fprintf(&b, "\n%s", formatCalculation(c))
	}
	return b.String()
}

// formatCalculation renders "<a> <symbol> <b> = <result>".
func formatCalculation(c ir.Calculation) string {
	return fmt.Sprintf("%d %s %d = %d", c.A, mathutil.Op(c.Op).Symbol(), c.B, c.Result)
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the greeting, text cleanup and arithmetic demo",
		Long: `Print a greeting, show a message before and after trimming and
capitalization, and evaluate the configured arithmetic steps.

Without --config the demo prints:
  Hello Maven World!
  Original: '  maven tutorial  '
  Processed: 'Maven tutorial'
  5 + 3 = 8

Examples:
  calcdemo demo
  calcdemo demo --config ./demo.cue
  calcdemo demo --config ./demo.yaml --db ./calcdemo.db
  calcdemo demo --db ./calcdemo.db --run 0192f4c1-...
  calcdemo demo --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "demo config file (.cue, .yaml or .yml)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "journal calculations to this SQLite database")
	cmd.Flags().StringVar(&opts.RunToken, "run", "", "append to this run instead of starting a new one (requires --db)")

	return cmd
}

func runDemo(opts *DemoOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := newFormatter(opts.RootOptions, cmd)

	demo := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return configError(out, err)
		}
		demo = loaded
		out.VerboseLog("Loaded config %s (%d step(s))", opts.Config, len(demo.Steps))
	}

	var st *store.Store
	if opts.Database != "" {
		var err error
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
	result := DemoResult{
		Greeting:     demo.Greeting,
		Original:     demo.Message,
		Processed:    textutil.Clean(demo.Message),
		RunToken:     calc.RunToken(),
		Calculations: make([]ir.Calculation, 0, len(demo.Steps)),
	}

	for i, step := range demo.Steps {
		c, err := calc.Calculate(ctx, step.Op, step.A, step.B)
		if err != nil {
			return commandError(out, ErrCodeDatabase, step.String(), WrapExitError(ExitCommandError, fmt.Sprintf("step %d (%s)", i, step), err))
		}
		result.Calculations = append(result.Calculations, c)
	}

	if st != nil {
		slog.Info("calculations journaled", "db", opts.Database, "run", result.RunToken, "count", len(result.Calculations), "last_seq", calc.Seq())
	}

	return out.Success(result)
}

// configError reports a config failure under its LoadError code, with the
// source position as details when CUE reported one.
func configError(out *OutputFormatter, err error) error {
	exitErr := WrapExitError(ExitCommandError, "failed to load config", err)

	var le *config.LoadError
	if !errors.As(err, &le) {
		return commandError(out, ErrCodeGeneric, nil, exitErr)
	}

	var details any
	if le.Pos.IsValid() {
		details = fmt.Sprintf("%s:%d:%d", le.Pos.Filename(), le.Pos.Line(), le.Pos.Column())
	}
	_ = out.Error(le.Code, le.Message, details)
	return exitErr
}
