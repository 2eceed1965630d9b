package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// errInterrupted stops the serve run group when a shutdown signal arrives.
var errInterrupted = errors.New("interrupted by signal")

// notifySignals subscribes to SIGINT and SIGTERM. The returned stop function
// unsubscribes.
func notifySignals() (<-chan os.Signal, func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return sigChan, func() { signal.Stop(sigChan) }
}

// waitForSignal blocks until a signal arrives on sigs or ctx is done. A
// signal calls onSignal and returns errInterrupted; a done context returns nil.
func waitForSignal(ctx context.Context, sigs <-chan os.Signal, onSignal func(os.Signal)) error {
	select {
	case sig := <-sigs:
		if onSignal != nil {
			onSignal(sig)
		}
		return errInterrupted
	case <-ctx.Done():
		return nil
	}
}
