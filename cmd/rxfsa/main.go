// Command rxfsa compiles a regex pattern into an NFA, a DFA, or a minimized
// DFA, and writes its graph description to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/rxfsa/dfa"
	"github.com/coregx/rxfsa/nfa"
	"github.com/coregx/rxfsa/render"
	"github.com/coregx/rxfsa/syntax"
)

const usage = `Usage:
  rxfsa (nfa|dfa|mdfa) REGEX

Here mdfa stands for minimized DFA.

For example:
  rxfsa mdfa "a*(a|b)b*" | dot -Tpng -o /tmp/dot.png && open /tmp/dot.png`

func main() {
	if len(os.Args) != 3 {
		gologger.Error().Msgf("expected exactly 2 arguments, got %d", len(os.Args)-1)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	mode, pattern := os.Args[1], os.Args[2]

	out, err := run(mode, pattern)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	fmt.Println(out)
}

func run(mode, pattern string) (string, error) {
	ast, err := syntax.Parse(pattern)
	if err != nil {
		return "", err
	}
	n, err := nfa.Compile(ast)
	if err != nil {
		return "", err
	}

	switch mode {
	case "nfa":
		return render.NFA(n), nil
	case "dfa":
		return render.DFA(dfa.Determinize(n), false), nil
	case "mdfa":
		return render.DFA(dfa.Minimize(dfa.Determinize(n)), false), nil
	default:
		return "", fmt.Errorf("unknown mode: %s", mode)
	}
}
