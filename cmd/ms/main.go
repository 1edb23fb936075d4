package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lucrnz/ms/internal/cli"
)

func main() {
	// Defaults for MS_LOG_LEVEL and friends may live in a local .env file
	_ = godotenv.Load()

	// Set up signal handling so reading stdin can be interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		// Restore default signal handling so a second Ctrl-C terminates
		<-ctx.Done()
		stop()
	}()
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	err := cli.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		fmt.Fprintln(os.Stderr, "\nInterrupted")
		return ExitInterrupted
	}
	fmt.Fprintln(os.Stderr, err)
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	return ExitError
}
