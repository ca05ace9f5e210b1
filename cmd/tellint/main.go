package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"

	"github.com/pthm/tellint/internal/cmd"
	"github.com/pthm/tellint/internal/version"
)

// Exit codes
const (
	exitPass  = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := fang.Execute(ctx, cmd.RootCmd,
		fang.WithVersion(version.Short()),
		fang.WithErrorHandler(handleError),
	)
	stop()

	os.Exit(exitCode(err))
}

// handleError prints errors through fang, except lint failures: the report
// already shows why a document failed.
func handleError(w io.Writer, styles fang.Styles, err error) {
	if errors.Is(err, cmd.ErrLintFailed) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitPass
	case errors.Is(err, cmd.ErrLintFailed):
		return exitFail
	default:
		return exitUsage
	}
}
