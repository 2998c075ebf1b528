package nfa

import (
	"fmt"

	"github.com/coregx/rxfsa/syntax"
)

// NFA is a finalized Thompson construction: a dense arena of states with
// exactly one start and one accepting (end) state. It is immutable — only
// Compile produces one, and readers (the determinizer, the renderer) only
// ever traverse it.
type NFA struct {
	states []State
	start  StateID
	end    StateID
}

// Start returns the NFA's single start state.
func (n *NFA) Start() StateID { return n.start }

// End returns the NFA's single accepting state.
func (n *NFA) End() StateID { return n.end }

// States returns every state in the NFA, indexed by StateID.
func (n *NFA) States() []State { return n.states }

// State returns the state with the given id.
func (n *NFA) State(id StateID) *State { return &n.states[id] }

// Len returns the number of states in the NFA.
func (n *NFA) Len() int { return len(n.states) }

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, end: %d}", len(n.states), n.start, n.end)
}

// Compile lowers a regex AST to a Thompson NFA, per spec §4.2: each AST
// variant recurses into a fragment, fragments compose by patching dangling
// edges, and a final pass patches every remaining dangling edge to a fresh
// accepting state before assigning dense ids.
func Compile(root syntax.Node) (*NFA, error) {
	b := NewBuilder()
	frag, err := b.build(root)
	if err != nil {
		return nil, err
	}

	end := b.addState()
	b.patch(frag.dangling, end)

	states, start, endID := b.finalize(frag.start, end)
	return &NFA{states: states, start: start, end: endID}, nil
}

func (b *Builder) build(n syntax.Node) (fragment, error) {
	switch v := n.(type) {
	case syntax.Empty:
		return b.fragEmpty(), nil

	case syntax.Char:
		return b.fragChar(v.Token), nil

	case syntax.Concat:
		left, err := b.build(v.Left)
		if err != nil {
			return fragment{}, err
		}
		right, err := b.build(v.Right)
		if err != nil {
			return fragment{}, err
		}
		return b.concat(left, right), nil

	case syntax.Or:
		left, err := b.build(v.Left)
		if err != nil {
			return fragment{}, err
		}
		right, err := b.build(v.Right)
		if err != nil {
			return fragment{}, err
		}
		return b.alternate(left, right), nil

	case syntax.OneOrMore:
		arg, err := b.build(v.Arg)
		if err != nil {
			return fragment{}, err
		}
		return b.oneOrMore(arg), nil

	case syntax.ZeroOrMore:
		arg, err := b.build(v.Arg)
		if err != nil {
			return fragment{}, err
		}
		return b.zeroOrMore(arg), nil

	case syntax.ZeroOrOne:
		arg, err := b.build(v.Arg)
		if err != nil {
			return fragment{}, err
		}
		return b.zeroOrOne(arg), nil

	default:
		return fragment{}, &UnknownNodeError{Node: n}
	}
}

// finalize assigns dense 0..N-1 ids to every state reachable from start,
// using a stack (not a queue) for the traversal — per spec §9, consumers
// must not depend on any particular ordering beyond density and uniqueness,
// so this deliberately does not guarantee BFS order.
func (b *Builder) finalize(start, end StateID) ([]State, StateID, StateID) {
	n := len(b.states)
	visited := make([]bool, n)
	order := make([]StateID, 0, n)

	stack := []StateID{start}
	visited[start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, s)

		old := &b.states[s]
		for _, e := range old.Edges() {
			if e.Target != InvalidState && !visited[e.Target] {
				visited[e.Target] = true
				stack = append(stack, e.Target)
			}
		}
	}

	remap := make([]StateID, n)
	for newID, oldID := range order {
		remap[oldID] = StateID(newID)
	}

	states := make([]State, len(order))
	for newID, oldID := range order {
		old := b.states[oldID]
		ns := State{id: StateID(newID), numEdges: old.numEdges}
		for i := 0; i < int(old.numEdges); i++ {
			e := old.edges[i]
			target := InvalidState
			if e.Target != InvalidState {
				target = remap[e.Target]
			}
			ns.edges[i] = Edge{Token: e.Token, Target: target}
		}
		states[newID] = ns
	}

	return states, remap[start], remap[end]
}
