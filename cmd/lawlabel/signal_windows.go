//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext wires Ctrl-C into batch cancellation so pool teardown can
// reap the Chrome processes instead of orphaning them mid-dataset. SIGTERM
// does not exist on Windows; os.Interrupt is the only portable signal here.
// Call stop() to restore the default signal disposition.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
