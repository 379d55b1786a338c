package experiment

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parity/config"
	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/logging"
	"github.com/katalvlaran/parity/parser"
	"github.com/katalvlaran/parity/spm"
	"github.com/katalvlaran/parity/strategy"
)

// Winner column values besides "even" and "odd".
const (
	WinnerNone    = "none"
	WinnerTimeout = "timeout"
)

var header = []string{"file", "strategy", "winner", "iterations"}

// Row is one line of batch output.
type Row struct {
	File     string
	Strategy strategy.Kind
	// Winner is the winner of the lowest-id vertex, WinnerNone for an
	// empty game or WinnerTimeout.
	Winner string
	// Iterations is the number of lift applications; 0 on timeout.
	Iterations int
}

// TimedOut reports whether the strategy hit the per-file deadline.
func (r Row) TimedOut() bool { return r.Winner == WinnerTimeout }

func (r Row) record() []string {
	it := ""
	if !r.TimedOut() {
		it = strconv.Itoa(r.Iterations)
	}
	return []string{r.File, r.Strategy.String(), r.Winner, it}
}

// Runner solves every game file of a directory with every configured
// strategy and writes one CSV row per (file, strategy).
type Runner struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *Metrics
	Out     io.Writer

	// SolveOptions are appended to every solve, after the deadline context.
	SolveOptions []spm.Option
}

// New returns a Runner. A nil logger means slog.Default; metrics may be nil.
func New(cfg config.Config, logger *slog.Logger, metrics *Metrics, out io.Writer) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Config: cfg, Logger: logger, Metrics: metrics, Out: out}
}

// Run processes the regular files of dir in name order.
//
// A file that cannot be read or parsed aborts the run. A strategy that
// exceeds Config.Timeout on a file is reported with a timeout row and is
// not run on later files. Cancelling ctx aborts the run with ctx.Err().
func (r *Runner) Run(ctx context.Context, dir string) error {
	if err := r.Config.Validate(); err != nil {
		return err
	}
	logger := r.Logger.With("run", uuid.NewString())
	ctx = logging.WithLogger(ctx, logger)

	files, err := gameFiles(dir)
	if err != nil {
		return err
	}
	logger.Info("batch started", "dir", dir, "files", len(files), "timeout", r.Config.Timeout)

	w := csv.NewWriter(r.Out)
	if err := w.Write(header); err != nil {
		return err
	}

	active := r.Config.Kinds()
	for _, name := range files {
		g, err := parser.ParseFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		rows, err := r.SolveFile(ctx, name, g, active)
		if err != nil {
			return err
		}

		var next []strategy.Kind
		for _, row := range rows {
			if err := w.Write(row.record()); err != nil {
				return err
			}
			if row.TimedOut() {
				logger.Warn("strategy timed out, dropped from later files",
					"file", name, "strategy", row.Strategy.String())
				continue
			}
			next = append(next, row.Strategy)
		}
		active = next
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}
	logger.Info("batch finished", "remaining_strategies", len(active))
	return nil
}

// SolveFile runs kinds concurrently on g and returns their rows in kinds
// order. Each solve gets its own Config.Timeout budget, started when the
// solve starts, so time spent waiting for a worker slot is not charged.
// The logger is taken from ctx.
func (r *Runner) SolveFile(ctx context.Context, name string, g *game.Game, kinds []strategy.Kind) ([]Row, error) {
	logger := logging.FromContext(ctx)

	var eg errgroup.Group
	if r.Config.Workers > 0 {
		eg.SetLimit(r.Config.Workers)
	}

	rows := make([]Row, len(kinds))
	for i, k := range kinds {
		i, k := i, k
		eg.Go(func() error {
			s, err := strategy.New(k, strategy.WithSeed(r.Config.Seed))
			if err != nil {
				return err
			}
			sctx, cancel := context.WithTimeout(ctx, r.Config.Timeout)
			defer cancel()
			opts := append([]spm.Option{spm.WithContext(sctx)}, r.SolveOptions...)

			start := time.Now()
			res, err := spm.Solve(g, s, opts...)
			elapsed := time.Since(start)

			row := Row{File: name, Strategy: k}
			switch {
			case errors.Is(err, context.DeadlineExceeded):
				row.Winner = WinnerTimeout
				r.Metrics.RecordSolve(k, OutcomeTimeout, res, elapsed)
			case err != nil:
				return fmt.Errorf("%s/%s: %w", name, k, err)
			default:
				row.Winner = winner(res)
				row.Iterations = res.Lifts
				r.Metrics.RecordSolve(k, OutcomeSolved, res, elapsed)
				logger.Debug("solved", "file", name, "strategy", k.String(),
					"passes", res.Passes, "lifts", res.Lifts, "elapsed", elapsed)
			}
			rows[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// winner names the player winning the lowest-id vertex.
func winner(res *spm.Result) string {
	g := res.Progress.Game()
	if g.IsEmpty() {
		return WinnerNone
	}
	w, _ := res.Winner(g.At(0).ID)
	return w.String()
}

// gameFiles lists the regular files of dir, sorted by name.
func gameFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", parser.ErrRead, err)
	}
	var out []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			out = append(out, e.Name())
		}
	}
	return out, nil
}
