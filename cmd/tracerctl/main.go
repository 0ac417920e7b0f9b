// tracerctl inspects and runs tracer resolution with the built-in providers.
//
// Usage:
//
//	tracerctl [global options] <command>
//
// Global options:
//
//	--manifest FILE    provider manifest (YAML or JSON)
//	--properties FILE  properties file, e.g. "tracerresolver: {disabled: true}"
//	--env-file FILE    dotenv file loaded before resolving
//	--stdout           also register the stdout factory
//	--log-spans        also register the logging converter
//	--log-level LEVEL  debug, info, warning or error (default "error")
//
// Commands:
//
//	list      print the candidates of each kind in the order they are tried
//	resolve   run one resolution and print the tracer type, or "none"
//
// Exit codes:
//
//	0: success
//	1: nothing resolved, or the command failed
//	2: invalid arguments
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:         "tracerctl",
		Usage:        "inspect and run tracer resolution",
		Writer:       stdout,
		ErrWriter:    stderr,
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "provider manifest `FILE` (YAML or JSON)",
				Sources: cli.EnvVars("TRACERRESOLVER_MANIFEST"),
			},
			&cli.StringFlag{
				Name:    "properties",
				Aliases: []string{"p"},
				Usage:   "properties `FILE` (YAML or JSON)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv `FILE` loaded before resolving; existing variables win",
			},
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "register the stdout factory",
			},
			&cli.BoolFlag{
				Name:  "log-spans",
				Usage: "register the logging converter",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL`: debug, info, warning or error",
				Value: "error",
			},
		},
		Commands: []*cli.Command{
			createListCommand(),
			createResolveCommand(),
		},
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return 2
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
