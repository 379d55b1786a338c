package experiment_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parity/builder"
	"github.com/katalvlaran/parity/config"
	"github.com/katalvlaran/parity/experiment"
	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/measure"
	"github.com/katalvlaran/parity/parser"
	"github.com/katalvlaran/parity/spm"
	"github.com/katalvlaran/parity/strategy"
)

func writeGame(t *testing.T, dir, name string, g *game.Game) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, parser.Format(&buf, g))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644))
}

// fixtures writes a.pg (Odd self-loop), b.pg (Even self-loop) and c.pg
// (random game) plus a subdirectory that must be ignored.
func fixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	odd, err := builder.SelfLoop(game.Even, 3)
	require.NoError(t, err)
	even, err := builder.SelfLoop(game.Odd, 2)
	require.NoError(t, err)
	rnd, err := builder.Random(20, builder.WithSeed(8))
	require.NoError(t, err)

	writeGame(t, dir, "a.pg", odd)
	writeGame(t, dir, "b.pg", even)
	writeGame(t, dir, "c.pg", rnd)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "skip"), 0o755))
	return dir
}

func readCSV(t *testing.T, out *bytes.Buffer) [][]string {
	t.Helper()
	recs, err := csv.NewReader(out).ReadAll()
	require.NoError(t, err)
	return recs
}

func TestRun_AllStrategies(t *testing.T) {
	t.Parallel()
	dir := fixtures(t)
	reg := prometheus.NewRegistry()
	metrics := experiment.NewMetrics(reg)

	var out bytes.Buffer
	cfg := config.Default()
	cfg.Workers = 2
	r := experiment.New(cfg, nil, metrics, &out)
	require.NoError(t, r.Run(context.Background(), dir))

	recs := readCSV(t, &out)
	require.Len(t, recs, 1+3*len(strategy.Kinds()))
	assert.Equal(t, []string{"file", "strategy", "winner", "iterations"}, recs[0])

	for _, rec := range recs[1:] {
		assert.NotEqual(t, experiment.WinnerTimeout, rec[2])
		assert.NotEmpty(t, rec[3])
	}
	// rows follow file order, then strategy order
	assert.Equal(t, []string{"a.pg", "input", "odd"}, recs[1][:3])
	assert.Equal(t, []string{"b.pg", "selfloop", "even"}, recs[10][:3])

	// every strategy agrees on the winner of each file
	for f := 0; f < 3; f++ {
		base := recs[1+f*5][2]
		for s := 1; s < 5; s++ {
			assert.Equal(t, base, recs[1+f*5+s][2])
		}
	}

	assert.EqualValues(t, 3, testutil.ToFloat64(metrics.SolvesTotal.WithLabelValues("priority", experiment.OutcomeSolved)))
	assert.Zero(t, testutil.ToFloat64(metrics.SolvesTotal.WithLabelValues("priority", experiment.OutcomeTimeout)))
	assert.Positive(t, testutil.ToFloat64(metrics.LiftsTotal.WithLabelValues("input")))
}

func TestRun_TimeoutDropsStrategy(t *testing.T) {
	t.Parallel()
	dir := fixtures(t)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	reg := prometheus.NewRegistry()
	metrics := experiment.NewMetrics(reg)
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Strategies = []string{"input", "random"}
	require.NoError(t, experiment.New(cfg, nil, metrics, &out).Run(ctx, dir))

	recs := readCSV(t, &out)
	require.Len(t, recs, 3, "both strategies time out on a.pg and are dropped")
	for _, rec := range recs[1:] {
		assert.Equal(t, "a.pg", rec[0])
		assert.Equal(t, experiment.WinnerTimeout, rec[2])
		assert.Equal(t, "", rec[3])
	}
	assert.EqualValues(t, 1, testutil.ToFloat64(metrics.SolvesTotal.WithLabelValues("random", experiment.OutcomeTimeout)))
}

func TestRun_ParseErrorAborts(t *testing.T) {
	t.Parallel()
	dir := fixtures(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pg"), []byte("parity 0;\nparity 0;"), 0o644))

	var out bytes.Buffer
	err := experiment.New(config.Default(), nil, nil, &out).Run(context.Background(), dir)
	require.ErrorIs(t, err, parser.ErrDuplicateHeader)

	recs := readCSV(t, &out)
	assert.Len(t, recs, 1+len(strategy.Kinds()), "a.pg rows are flushed before the abort")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := experiment.New(config.Default(), nil, nil, &out).Run(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, parser.ErrRead)

	bad := config.Default()
	bad.Timeout = 0
	err = experiment.New(bad, nil, nil, &out).Run(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolveFile_QueuedSolvesGetFullBudget(t *testing.T) {
	t.Parallel()
	g, err := builder.SelfLoop(game.Even, 1)
	require.NoError(t, err)

	const (
		timeout = 400 * time.Millisecond
		work    = 150 * time.Millisecond
	)
	cfg := config.Default()
	cfg.Workers = 1
	cfg.Timeout = timeout
	r := experiment.New(cfg, nil, nil, &bytes.Buffer{})
	// each solve spends work on its first update; five of them back to back
	// take far longer than one timeout
	r.SolveOptions = []spm.Option{spm.WithOnLift(func(_ *game.Vertex, before, _ measure.Value) {
		if before.Equal(g.NewMeasure()) {
			time.Sleep(work)
		}
	})}

	rows, err := r.SolveFile(context.Background(), "loop.pg", g, strategy.Kinds())
	require.NoError(t, err)
	require.Len(t, rows, len(strategy.Kinds()))
	for _, row := range rows {
		assert.False(t, row.TimedOut(), "strategy %s", row.Strategy)
		assert.Equal(t, "odd", row.Winner, "strategy %s", row.Strategy)
	}
}

func TestSolveFile_EmptyGame(t *testing.T) {
	t.Parallel()
	g, err := game.New(nil)
	require.NoError(t, err)
	r := experiment.New(config.Default(), nil, nil, &bytes.Buffer{})
	rows, err := r.SolveFile(context.Background(), "empty.pg", g, []strategy.Kind{strategy.SelfLoop})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, experiment.WinnerNone, rows[0].Winner)
	assert.False(t, rows[0].TimedOut())
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := experiment.NewMetrics(reg)
	m.RecordSolve(strategy.Input, experiment.OutcomeSolved, nil, time.Millisecond)

	path := filepath.Join(t.TempDir(), "pgsolve.prom")
	require.NoError(t, experiment.WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pgsolve_solves_total{outcome="solved",strategy="input"} 1`)
	assert.Contains(t, string(data), "pgsolve_solve_seconds_bucket")
}
