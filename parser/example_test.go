package parser_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/parity/parser"
)

// ExampleParseString parses a two-vertex game and writes it back in
// canonical form: header first, ids ascending, successors sorted.
func ExampleParseString() {
	doc, err := parser.ParseString(`1 2 1 1,0; 0 1 0 1 "start";`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := doc.Game()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = parser.Format(os.Stdout, g)
	// Output:
	// parity 1;
	// 0 1 0 1 "start";
	// 1 2 1 0,1;
}
