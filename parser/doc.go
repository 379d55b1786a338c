// Package parser reads and writes the textual parity game format:
//
//	parity <max-id>;
//	<id> <priority> <owner:0|1> <succ>[,<succ>...] ["<name>"];
//
// Records end with ';' and may span lines. The header is optional but, when
// present, must be the first record and must not repeat. Owner 0 is Even
// and 1 is Odd.
//
// Parsing is fail-fast: the first malformed record stops the parse with a
// *ParseError carrying its line, wrapping one of ErrMalformedHeader,
// ErrDuplicateHeader or ErrMalformedVertex (all wrap ErrSyntax). Structural
// problems such as unknown successors are reported by Document.Game, which
// returns game.ErrInvalidGame errors instead.
package parser
