// Command calcdemo prints a greeting, cleans up a message, and evaluates
// int32 arithmetic. See `calcdemo --help`.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/roach88/calcdemo/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		// Single-line error on stderr; no usage, no stack trace.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString("calcdemo: " + msg + "\n")
	}
	os.Exit(cli.GetExitCode(err))
}
