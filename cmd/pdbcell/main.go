// 14 October 2026

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrew-torda/pdbcell/pkg/pdbcell"
)

const (
	exitSuccess = iota
	exitFailure
	exitInterrupt
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := pdbcell.Execute(ctx)
	interrupted := ctx.Err() != nil
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdbcell:", err)
		if interrupted {
			os.Exit(exitInterrupt)
		}
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
