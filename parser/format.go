package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/parity/game"
)

// Format writes g in the text format read by Parse: a header with the
// largest id, then one vertex per line in ascending id order. Parsing the
// output yields a game equal to g. The empty game is written as nothing.
func Format(w io.Writer, g *game.Game) error {
	if g.IsEmpty() {
		return nil
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d%s\n", headerKeyword, g.At(g.Len()-1).ID, recordSep)
	for _, v := range g.Vertices() {
		if strings.ContainsAny(v.Name, `";`) {
			return fmt.Errorf("%w: vertex %d: %q", ErrUnencodable, v.ID, v.Name)
		}
		succ := make([]string, len(v.Successors))
		for i, s := range v.Successors {
			succ[i] = strconv.Itoa(s)
		}
		fmt.Fprintf(bw, "%d %d %d %s", v.ID, v.Priority, int(v.Owner), strings.Join(succ, ","))
		if v.Name != "" {
			fmt.Fprintf(bw, " \"%s\"", v.Name)
		}
		fmt.Fprintf(bw, "%s\n", recordSep)
	}
	return bw.Flush()
}
