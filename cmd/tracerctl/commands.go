package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/aalemi-dev/tracerresolver/discovery"
	"github.com/aalemi-dev/tracerresolver/logger"
	"github.com/aalemi-dev/tracerresolver/priority"
	"github.com/aalemi-dev/tracerresolver/properties"
	"github.com/aalemi-dev/tracerresolver/providers"
	"github.com/aalemi-dev/tracerresolver/tracerresolver"
)

// exitError carries a non-zero exit code after the command has printed its output.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError is an invalid flag value.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// onUsageError marks flag parsing failures so run exits with code 2.
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{err: err}
}

func createListCommand() *cli.Command {
	return &cli.Command{
		Name:         "list",
		Usage:        "print the candidates of each kind in the order they are tried",
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, log, err := newResolver(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return cmdList(cmd, r)
		},
	}
}

func createResolveCommand() *cli.Command {
	return &cli.Command{
		Name:         "resolve",
		Usage:        "run one resolution and print the tracer type, or \"none\"",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "span",
				Usage: "start and end a span `NAME` on the resolved tracer",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, log, err := newResolver(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return cmdResolve(ctx, cmd, r)
		},
	}
}

func newResolver(cmd *cli.Command) (*tracerresolver.Resolver, *logger.LoggerClient, error) {
	if path := cmd.String("env-file"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, nil, &usageError{err: fmt.Errorf("--env-file: %w", err)}
		}
	}

	props := properties.New()
	if path := cmd.String("properties"); path != "" {
		if err := props.LoadFile(path); err != nil {
			return nil, nil, &usageError{err: fmt.Errorf("--properties: %w", err)}
		}
	}

	log := logger.NewLoggerClient(logger.Config{
		Level:       cmd.String("log-level"),
		ServiceName: "tracerctl",
	})

	reg := discovery.NewRegistry(discovery.WithRegistryLogger(log))
	var opts []providers.Option
	if cmd.Bool("log-spans") {
		opts = append(opts, providers.WithLogger(log))
	}
	if err := providers.Register(reg, opts...); err != nil {
		return nil, nil, err
	}
	if cmd.Bool("stdout") {
		if err := providers.RegisterStdout(reg, "tracerctl", cmd.Root().Writer); err != nil {
			return nil, nil, err
		}
	}

	r := tracerresolver.New(
		tracerresolver.Config{ManifestPath: cmd.String("manifest")},
		tracerresolver.WithRegistry(reg),
		tracerresolver.WithProperties(props),
		tracerresolver.WithLogger(log),
	)
	return r, log, nil
}

func cmdList(cmd *cli.Command, r *tracerresolver.Resolver) error {
	w := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tPRIORITY\tTYPE")
	for _, kind := range discovery.Kinds() {
		for _, c := range r.Candidates(kind) {
			prio := "-"
			if p, ok := priority.Default(c.Instance); ok {
				prio = strconv.Itoa(p)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%T\n", kind, c.Name, prio, c.Instance)
		}
	}
	return w.Flush()
}

func cmdResolve(ctx context.Context, cmd *cli.Command, r *tracerresolver.Resolver) error {
	out := cmd.Root().Writer

	t := r.ResolveTracer()
	if t == nil {
		fmt.Fprintln(out, "none")
		return &exitError{code: 1}
	}
	fmt.Fprintf(out, "%T\n", t)

	if name := cmd.String("span"); name != "" {
		_, span := t.StartSpan(ctx, name)
		span.End()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := tracerresolver.Shutdown(shutdownCtx, t); err != nil {
		return fmt.Errorf("flushing tracer: %w", err)
	}
	return nil
}
