//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext wires Ctrl-C and SIGTERM into batch cancellation. A canceled
// context stops the generate loop between rows, so pool teardown can reap
// the Chrome processes instead of orphaning them mid-dataset. Call stop() to
// restore the default signal disposition.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
