package parser_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parity/builder"
	"github.com/katalvlaran/parity/game"
	"github.com/katalvlaran/parity/parser"
	"github.com/katalvlaran/parity/spm"
	"github.com/katalvlaran/parity/strategy"
)

const europe = `parity 4; 1 3 0 1,3,4 "Europe"; 0 6 1 4,2; 4 5 1 0 "Antarctica"; 1 8 1 2,4,3 "America"; 3 6 0 4,2 "Australia"; 2 7 0 3,1,0,4 "Asia";`

func TestParse_Europe(t *testing.T) {
	t.Parallel()
	doc, err := parser.ParseString(europe)
	require.NoError(t, err)
	require.NotNil(t, doc.Header)
	assert.Equal(t, 4, doc.Header.MaxID)
	require.Len(t, doc.Vertices, 6)
	assert.Equal(t, game.Vertex{
		ID: 1, Priority: 3, Owner: game.Even, Successors: []int{1, 3, 4}, Name: "Europe", Index: 0,
	}, doc.Vertices[0])
	assert.Equal(t, "", doc.Vertices[1].Name)

	g, err := doc.Game()
	require.NoError(t, err)
	assert.Equal(t, 5, g.Len())
	america := g.MustVertex(1)
	assert.Equal(t, "America", america.Name)
	assert.Equal(t, []int{2, 3, 4}, america.Successors)

	var even, odd []int
	for i, k := range strategy.Kinds() {
		res, err := spm.Solve(g, strategy.MustNew(k))
		require.NoError(t, err)
		if i == 0 {
			even, odd = res.WinningSet(game.Even), res.WinningSet(game.Odd)
			continue
		}
		assert.Empty(t, cmp.Diff(even, res.WinningSet(game.Even)), "strategy %s", k)
		assert.Empty(t, cmp.Diff(odd, res.WinningSet(game.Odd)), "strategy %s", k)
	}
	// Odd cycles 0 → 4 → 0 through the lowest priority 5; Even keeps 2 ↔ 3.
	assert.Equal(t, []int{2, 3}, even)
	assert.Equal(t, []int{0, 1, 4}, odd)
}

func TestParse_HeaderOptionalAndMultiline(t *testing.T) {
	t.Parallel()
	doc, err := parser.ParseString("\n0 1 1 0;\n\n1 2 0\t0,1 \"b\"\n;\n  ;")
	require.NoError(t, err)
	assert.Nil(t, doc.Header)
	require.Len(t, doc.Vertices, 2)
	assert.Equal(t, game.Odd, doc.Vertices[0].Owner)
	assert.Equal(t, "b", doc.Vertices[1].Name)
	assert.Equal(t, 1, doc.Vertices[1].Index)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		text string
		want error
		line int
	}{
		{"duplicate header", "parity 1;\n0 0 0 0;\nparity 1;", parser.ErrDuplicateHeader, 3},
		{"header after vertices", "0 0 0 0;\nparity 0;", parser.ErrMalformedHeader, 2},
		{"header arity", "parity;", parser.ErrMalformedHeader, 1},
		{"header extra field", "parity 3 4;", parser.ErrMalformedHeader, 1},
		{"header not a number", "parity x;", parser.ErrMalformedHeader, 1},
		{"owner out of range", "0 1 2 0;", parser.ErrMalformedVertex, 1},
		{"missing successors", "parity 0;\n\n0 1 0;", parser.ErrMalformedVertex, 3},
		{"trailing comma", "0 1 0 0,;", parser.ErrMalformedVertex, 1},
		{"unterminated name", `0 1 0 0 "x;`, parser.ErrMalformedVertex, 1},
		{"negative id", "-1 1 0 0;", parser.ErrMalformedVertex, 1},
		{"overflow", "0 99999999999999999999 0 0;", parser.ErrMalformedVertex, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := parser.ParseString(tc.text)
			require.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, parser.ErrSyntax)

			var pe *parser.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Contains(t, err.Error(), pe.Record)
		})
	}
}

func TestDocument_GameStructureError(t *testing.T) {
	t.Parallel()
	doc, err := parser.ParseString("0 1 0 7;")
	require.NoError(t, err)
	_, err = doc.Game()
	assert.ErrorIs(t, err, game.ErrUnknownSuccessor)
	assert.NotErrorIs(t, err, parser.ErrSyntax)
}

func TestParseFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "europe.pg")
	require.NoError(t, os.WriteFile(path, []byte(europe), 0o644))

	g, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Len())

	_, err = parser.ParseFile(filepath.Join(dir, "missing.pg"))
	assert.ErrorIs(t, err, parser.ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.pg")
	require.NoError(t, os.WriteFile(bad, []byte("parity 0;\nnope;"), 0o644))
	_, err = parser.ParseFile(bad)
	assert.ErrorIs(t, err, parser.ErrMalformedVertex)
	assert.True(t, strings.HasPrefix(err.Error(), bad))
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.Random(15, builder.WithSeed(seed), builder.WithMaxPriority(6))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, parser.Format(&buf, g))
		doc, err := parser.Parse(&buf)
		require.NoError(t, err)
		require.Equal(t, 14, doc.Header.MaxID)

		back, err := doc.Game()
		require.NoError(t, err)
		require.Equal(t, g.Len(), back.Len())
		for i := 0; i < g.Len(); i++ {
			want, got := g.At(i), back.At(i)
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Priority, got.Priority)
			assert.Equal(t, want.Owner, got.Owner)
			assert.Equal(t, want.Successors, got.Successors)
		}
	}
}

func TestFormat_Names(t *testing.T) {
	t.Parallel()
	g, err := parser.ParseString(`0 1 0 0,1 "Asia"; 1 2 1 0;`)
	require.NoError(t, err)
	gm, err := g.Game()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, parser.Format(&buf, gm))
	assert.Equal(t, "parity 1;\n0 1 0 0,1 \"Asia\";\n1 2 1 0;\n", buf.String())

	bad, err := game.New([]game.Vertex{{ID: 0, Successors: []int{0}, Name: `a"b`}})
	require.NoError(t, err)
	assert.ErrorIs(t, parser.Format(&bytes.Buffer{}, bad), parser.ErrUnencodable)
}
