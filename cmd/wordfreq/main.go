// Command wordfreq counts normalized English words across a directory of
// text files and writes the frequencies to CSV.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cognicore/wordfreq/internal/display"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			err = errors.New("interrupted, no output written")
		}
		display.New(os.Stderr).Error(err)
		stop()
		os.Exit(1)
	}
}
