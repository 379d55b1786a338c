package parser

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/parity/game"
)

const (
	recordSep     = ";"
	headerKeyword = "parity"
)

// vertexRE matches "<id> <priority> <owner> <succ>[,<succ>...] [\"name\"]".
var vertexRE = regexp.MustCompile(`^(\d+)\s+(\d+)\s+([01])\s+(\d+(?:,\d+)*)(?:\s+"([^"]*)")?$`)

// Parse reads a whole game text from r.
//
// Records are separated by ';' and may span lines; blank records are
// skipped. The first error aborts parsing and is returned as *ParseError.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return ParseString(string(data))
}

// ParseString is Parse over an in-memory text.
func ParseString(text string) (*Document, error) {
	doc := &Document{}
	line := 1
	for _, rec := range strings.Split(text, recordSep) {
		body := strings.TrimSpace(rec)
		lead := strings.Index(rec, body)
		at := line + strings.Count(rec[:lead], "\n")
		line += strings.Count(rec, "\n")
		if body == "" {
			continue
		}
		if err := doc.add(body); err != nil {
			return nil, &ParseError{Line: at, Record: body, Err: err}
		}
	}
	return doc, nil
}

// ParseFile reads, parses and validates the game stored at path.
func ParseFile(path string) (*game.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := doc.Game()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// add classifies one non-blank record.
func (d *Document) add(body string) error {
	fields := strings.Fields(body)
	if fields[0] == headerKeyword {
		return d.addHeader(fields)
	}
	v, err := parseVertex(body)
	if err != nil {
		return err
	}
	v.Index = len(d.Vertices)
	d.Vertices = append(d.Vertices, v)
	return nil
}

func (d *Document) addHeader(fields []string) error {
	if d.Header != nil {
		return ErrDuplicateHeader
	}
	if len(d.Vertices) > 0 {
		return fmt.Errorf("%w: header must be the first record", ErrMalformedHeader)
	}
	if len(fields) != 2 {
		return fmt.Errorf("%w: want %q", ErrMalformedHeader, "parity <max-id>")
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil || id < 0 {
		return fmt.Errorf("%w: max id %q is not a non-negative integer", ErrMalformedHeader, fields[1])
	}
	d.Header = &Header{MaxID: id}
	return nil
}

func parseVertex(body string) (game.Vertex, error) {
	m := vertexRE.FindStringSubmatch(body)
	if m == nil {
		return game.Vertex{}, ErrMalformedVertex
	}
	id, err := atoi(m[1], "id")
	if err != nil {
		return game.Vertex{}, err
	}
	prio, err := atoi(m[2], "priority")
	if err != nil {
		return game.Vertex{}, err
	}
	owner, err := game.ParseOwner(m[3])
	if err != nil {
		return game.Vertex{}, fmt.Errorf("%w: %w", ErrMalformedVertex, err)
	}
	parts := strings.Split(m[4], ",")
	succ := make([]int, len(parts))
	for i, s := range parts {
		if succ[i], err = atoi(s, "successor"); err != nil {
			return game.Vertex{}, err
		}
	}
	return game.Vertex{ID: id, Priority: prio, Owner: owner, Successors: succ, Name: m[5]}, nil
}

// atoi only fails on overflow: the regexp already guarantees digits.
func atoi(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q out of range", ErrMalformedVertex, what, s)
	}
	return n, nil
}
