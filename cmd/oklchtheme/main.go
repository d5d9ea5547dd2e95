// Package main provides the oklchtheme CLI for matching CSS oklch() colors
// against a theme.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command tree and maps errors to an exit code.
// Errors are printed after the usage text of the failing command.
func execute(ctx context.Context, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	if errors.Is(err, errSilentFailure) {
		return 1
	}

	fmt.Fprint(stderr, cmd.UsageString())
	fmt.Fprintf(stderr, "\n%s\n\n", err)
	return 1
}
