package parser

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parity/game"
)

// Sentinel errors for parsing.
//
// Every syntax error wraps ErrSyntax and is delivered inside a *ParseError
// naming the offending line. ErrRead is kept apart: the text was never seen.
var (
	// ErrSyntax is the umbrella for every malformed-text error.
	ErrSyntax = errors.New("parser: syntax error")

	// ErrMalformedHeader indicates a "parity ..." record that is not
	// "parity <max-id>", or a header that is not the first record.
	ErrMalformedHeader = fmt.Errorf("%w: malformed header", ErrSyntax)

	// ErrDuplicateHeader indicates a second header record.
	ErrDuplicateHeader = fmt.Errorf("%w: duplicate header", ErrSyntax)

	// ErrMalformedVertex indicates a record that is neither a header nor a
	// vertex spec "<id> <priority> <owner> <succ,...> [\"name\"]".
	ErrMalformedVertex = fmt.Errorf("%w: malformed vertex spec", ErrSyntax)

	// ErrRead indicates that the input could not be read.
	ErrRead = errors.New("parser: cannot read input")

	// ErrUnencodable is returned by Format for a vertex name that cannot be
	// written back (it contains a quote or a semicolon).
	ErrUnencodable = errors.New("parser: name cannot be encoded")
)

// ParseError locates a syntax error in the input.
type ParseError struct {
	// Line is the 1-based line on which the record starts.
	Line int
	// Record is the offending record, trimmed, without its ';'.
	Record string
	// Err is one of the ErrSyntax sentinels, possibly wrapped.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Header is the optional first record "parity <max-id>".
type Header struct {
	MaxID int
}

// Document is the parsed text before structural validation. Vertices keep
// record order, duplicates included; Index is the record position.
type Document struct {
	Header   *Header
	Vertices []game.Vertex
}

// Game validates the document into an immutable game. A repeated id is
// replaced by its last occurrence.
func (d *Document) Game() (*game.Game, error) {
	return game.New(d.Vertices)
}
