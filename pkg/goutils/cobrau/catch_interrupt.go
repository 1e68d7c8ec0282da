/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/voedger/dsakatas/pkg/goutils/logger"
)

// ExecCommandAndCatchInterrupt executes cmd with a context which is cancelled on os.Interrupt.
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return goAndCatchInterrupt(cmd.ExecuteContext)
}

func goAndCatchInterrupt(f func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- f(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		logger.Info("signal received:", os.Interrupt)
	}
	logger.Verbose("waiting for function to finish...")
	return <-done
}
