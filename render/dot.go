// Package render walks a finished NFA or DFA and emits a Graphviz dot
// description suitable for visualization. It is a pure consumer of the
// traversal contracts package nfa and package dfa expose; it never mutates
// an automaton.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/rxfsa/dfa"
	"github.com/coregx/rxfsa/nfa"
)

// graph accumulates dot nodes and edges in emission order, mirroring the
// DotGraph accumulator the layout is ported from: a dummy unlabeled entry
// node pointing at the real start, one node per automaton state shaped
// doublecircle if accepting and circle otherwise, and one edge per
// transition labeled with its token (empty for ε).
type graph struct {
	lines []string
}

func newGraph() *graph {
	return &graph{lines: []string{"digraph {", "  rankdir=LR"}}
}

func (g *graph) node(id int, label, shape string) {
	g.lines = append(g.lines, fmt.Sprintf("  S%d[label=%q,shape=%q]", id, label, shape))
}

func (g *graph) edge(from, to int, label string) {
	g.lines = append(g.lines, fmt.Sprintf("  S%d->S%d[label=%q]", from, to, label))
}

func (g *graph) format() string {
	lines := append(append([]string{}, g.lines...), "}")
	return strings.Join(lines, "\n")
}

// NFA renders n as a dot graph: one circle node per state, doublecircle for
// n.End(), a dummy entry node pointing at n.Start(), and one labeled edge
// per transition (the ε label is the empty string).
func NFA(n *nfa.NFA) string {
	g := newGraph()

	const entryID = -1
	g.node(entryID, "", "none")

	// Dot node ids are the state ids themselves; the dummy entry node uses
	// id -1, which no state has.
	nodeID := func(s nfa.StateID) int { return int(s) }

	for i := range n.States() {
		s := n.State(nfa.StateID(i))
		shape := "circle"
		if s.ID() == n.End() {
			shape = "doublecircle"
		}
		g.node(nodeID(s.ID()), strconv.Itoa(int(s.ID())), shape)
	}
	g.edge(entryID, nodeID(n.Start()), "")

	for i := range n.States() {
		s := n.State(nfa.StateID(i))
		for _, e := range s.Edges() {
			if e.Target == nfa.InvalidState {
				continue
			}
			g.edge(nodeID(s.ID()), nodeID(e.Target), e.Token.String())
		}
	}

	return g.format()
}

// DFA renders d as a dot graph. When details is true, each state's label is
// its provenance set of NFA state ids (comma-joined) instead of its own id,
// matching the reference renderer's details mode used for debugging subset
// construction.
func DFA(d *dfa.DFA, details bool) string {
	g := newGraph()

	const entryID = -1
	g.node(entryID, "", "none")

	nodeID := func(s dfa.StateID) int { return int(s) }

	for i := range d.States() {
		s := d.State(dfa.StateID(i))
		shape := "circle"
		if s.IsEnd() {
			shape = "doublecircle"
		}
		g.node(nodeID(s.ID()), dfaLabel(s, details), shape)
	}
	g.edge(entryID, nodeID(d.Start()), "")

	for i := range d.States() {
		s := d.State(dfa.StateID(i))
		for _, tr := range s.Transitions() {
			g.edge(nodeID(s.ID()), nodeID(tr.Target), string(rune(tr.Token)))
		}
	}

	return g.format()
}

func dfaLabel(s *dfa.State, details bool) string {
	if !details {
		return strconv.Itoa(int(s.ID()))
	}
	ids := s.NFAStates()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}
