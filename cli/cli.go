package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/parity/strategy"
)

// Mode selects single-game or batch operation.
type Mode int

const (
	// Single solves one game file with one strategy.
	Single Mode = iota
	// Batch runs every configured strategy on every file of a directory.
	Batch
)

// Request is a validated command line.
type Request struct {
	Mode     Mode
	GamePath string
	Strategy strategy.Kind
	Dir      string
}

// ExitError is an error carrying the process exit status.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `usage: pgsolve -pg <file path> [-input]/[-random]/[-priority]/[-successor]/[-selfloop]
       pgsolve -ex <directory>

Solves parity games with small progress measures.

Options:
`

// Parse processes command-line arguments (without the program name). It
// returns the request, or shouldExit=true after printing usage to output
// when the arguments are missing, conflicting or unknown. Flag names are
// case-insensitive; their values are not.
func Parse(args []string, output io.Writer) (*Request, bool, error) {
	fs := flag.NewFlagSet("pgsolve", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}

	pg := fs.String("pg", "", "Path to a parity game file.")
	ex := fs.String("ex", "", "Directory of game files to run every strategy against.")
	kinds := strategy.Kinds()
	chosen := make([]*bool, len(kinds))
	for i, k := range kinds {
		chosen[i] = fs.Bool(k.String(), false, fmt.Sprintf("Solve with the %s ordering.", k))
	}

	if err := fs.Parse(normalize(args)); err != nil {
		// flag has already reported the problem and printed usage
		return nil, true, nil
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(output, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		return nil, true, nil
	}

	var picked []strategy.Kind
	for i, on := range chosen {
		if *on {
			picked = append(picked, kinds[i])
		}
	}

	switch {
	case *pg != "" && *ex == "" && len(picked) == 1:
		return &Request{Mode: Single, GamePath: *pg, Strategy: picked[0]}, false, nil
	case *ex != "" && *pg == "" && len(picked) == 0:
		return &Request{Mode: Batch, Dir: *ex}, false, nil
	default:
		fs.Usage()
		return nil, true, nil
	}
}

// normalize lowercases flag names, leaving the values of -pg and -ex (which
// are paths) untouched.
func normalize(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") || a == "-" || a == "--" {
			out = append(out, a)
			continue
		}
		name, value, hasValue := strings.Cut(a, "=")
		name = strings.ToLower(name)
		if hasValue {
			out = append(out, name+"="+value)
			continue
		}
		out = append(out, name)
		if bare := strings.TrimLeft(name, "-"); (bare == "pg" || bare == "ex") && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}
