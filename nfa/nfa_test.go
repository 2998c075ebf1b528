package nfa

import (
	"testing"

	"github.com/coregx/rxfsa/syntax"
)

func compilePattern(t *testing.T, pattern string) *NFA {
	t.Helper()
	ast, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("syntax.Parse(%q): %v", pattern, err)
	}
	n, err := Compile(ast)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return n
}

func reachableFromStart(n *NFA) map[StateID]bool {
	seen := map[StateID]bool{n.Start(): true}
	stack := []StateID{n.Start()}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.State(s).Edges() {
			if e.Target != InvalidState && !seen[e.Target] {
				seen[e.Target] = true
				stack = append(stack, e.Target)
			}
		}
	}
	return seen
}

func TestCompileSingleAcceptingReachableState(t *testing.T) {
	patterns := []string{"", "a", "abcde", "ab|de", "a*(a|b)b*", "(a|b)*aaa(a|b)*", "a(bcd*|efgh?(jk)+)*"}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			n := compilePattern(t, p)

			reached := reachableFromStart(n)
			if len(reached) != n.Len() {
				t.Errorf("not all states reachable from start: reached %d of %d", len(reached), n.Len())
			}

			accepting := 0
			for i := range n.States() {
				if StateID(i) == n.End() {
					accepting++
				}
			}
			if accepting != 1 {
				t.Errorf("expected exactly one accepting state, found %d", accepting)
			}
		})
	}
}

func TestCompileEmptyPatternStateCount(t *testing.T) {
	// "" parses to Empty, a single ε-edged state pre-finalize; finalization
	// adds the accepting state, for 2 states total.
	n := compilePattern(t, "")
	if n.Len() != 2 {
		t.Errorf("Compile(\"\") has %d states, want 2", n.Len())
	}
}

func TestCompileUnknownNode(t *testing.T) {
	b := NewBuilder()
	_, err := b.build(unknownNode{})
	if err == nil {
		t.Fatal("expected error for unknown AST node")
	}
	if _, ok := err.(*UnknownNodeError); !ok {
		t.Fatalf("expected *UnknownNodeError, got %T: %v", err, err)
	}
}

// unknownNode embeds syntax.Empty purely to satisfy the unexported node()
// method of the sealed syntax.Node interface; its own type switches to the
// default branch in build(), exercising the defensive ErrUnknownNode path
// that guards against future AST variants the builder hasn't learned yet.
type unknownNode struct {
	syntax.Empty
}
