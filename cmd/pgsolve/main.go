// Command pgsolve solves parity games with small progress measures, either
// one game with a chosen vertex ordering or a directory of games with every
// configured ordering.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/parity/cli"
	"github.com/katalvlaran/parity/config"
	"github.com/katalvlaran/parity/experiment"
	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/logging"
	"github.com/katalvlaran/parity/parser"
	"github.com/katalvlaran/parity/spm"
	"github.com/katalvlaran/parity/strategy"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program for testing: configuration comes from
// $PGSOLVE_CONFIG, logs go to stderr, results to stdout.
func run(stdout, stderr io.Writer, args []string) error {
	req, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Writer: stderr})
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("configuration loaded", "seed", cfg.Seed, "timeout", cfg.Timeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	switch req.Mode {
	case cli.Batch:
		return runBatch(ctx, stdout, cfg, req.Dir)
	default:
		return runSingle(ctx, stdout, cfg, req)
	}
}

func runSingle(ctx context.Context, out io.Writer, cfg config.Config, req *cli.Request) error {
	logger := logging.FromContext(ctx)
	g, err := parser.ParseFile(req.GamePath)
	if err != nil {
		return err
	}
	s, err := strategy.New(req.Strategy, strategy.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}

	if req.Strategy == strategy.SelfLoop && logger.Enabled(ctx, slog.LevelDebug) {
		logSelfLoopPaths(ctx, g)
	}

	start := time.Now()
	res, err := spm.Solve(g, s, spm.WithContext(ctx))
	if err != nil {
		return err
	}
	logger.Info("solved", "file", req.GamePath, "strategy", s.Kind().String(),
		"passes", res.Passes, "lifts", res.Lifts, "elapsed", time.Since(start))

	printSummary(out, g)
	fmt.Fprintf(out, "strategy: %s, passes: %d, lifts: %d, updates: %d\n\n",
		res.Strategy, res.Passes, res.Lifts, res.Updates)
	fmt.Fprintf(out, "Won even: %v\n", res.WinningSet(game.Even))
	fmt.Fprintf(out, "Won odd : %v\n", res.WinningSet(game.Odd))
	return nil
}

// logSelfLoopPaths explains the selfloop ordering: each vertex is visited by
// the length of its shortest play into a terminating self-loop.
func logSelfLoopPaths(ctx context.Context, g *game.Game) {
	logger := logging.FromContext(ctx)
	for _, v := range g.Vertices() {
		path, err := strategy.SelfLoopPath(g, v.ID)
		if err != nil {
			logger.Debug("selfloop order", "vertex", v.ID, "path", "none")
			continue
		}
		logger.Debug("selfloop order", "vertex", v.ID, "distance", len(path)-1, "path", path)
	}
}

func printSummary(out io.Writer, g *game.Game) {
	fmt.Fprintf(out, "vertices: %d, max priority: %d, max measure: %s\n",
		g.Len(), g.MaxPriority(), g.MaxMeasure())
	for _, v := range g.Vertices() {
		fmt.Fprintf(out, "  %s: priority %d, owner %s, successors %v\n",
			v.Label(), v.Priority, v.Owner, v.Successors)
	}
	fmt.Fprintln(out)
}

func runBatch(ctx context.Context, out io.Writer, cfg config.Config, dir string) error {
	logger := logging.FromContext(ctx)
	reg := prometheus.NewRegistry()
	metrics := experiment.NewMetrics(reg)

	runErr := experiment.New(cfg, logger, metrics, out).Run(ctx, dir)
	if cfg.MetricsFile != "" {
		if err := experiment.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("writing metrics failed", "path", cfg.MetricsFile, slog.Any("error", err))
			if runErr == nil {
				runErr = err
			}
		}
	}
	return runErr
}
