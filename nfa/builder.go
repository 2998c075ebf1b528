package nfa

// dangling names one edge slot whose target has not yet been chosen: state
// slot of state.edges[slot]. patch resolves it once the next fragment in
// the construction is known. This is the "unresolved sentinel" approach
// from the design notes, rather than a fragment type carrying
// pointer-to-pointer indirection.
type dangling struct {
	state StateID
	slot  int
}

// fragment is the result of lowering one AST subtree: a start state plus
// every dangling edge still waiting to be wired to whatever comes next.
type fragment struct {
	start    StateID
	dangling []dangling
}

// Builder constructs an NFA incrementally via Thompson's construction. It
// owns the state arena; fragments only ever reference it by StateID.
type Builder struct {
	states []State
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

func (b *Builder) addState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id})
	return id
}

// setEdge installs an edge in slot (0 or 1) of state id, pointing nowhere
// in particular yet (InvalidState) unless target is already known.
func (b *Builder) setEdge(id StateID, slot int, tok Token, target StateID) {
	s := &b.states[id]
	s.edges[slot] = Edge{Token: tok, Target: target}
	if int(s.numEdges) <= slot {
		s.numEdges = uint8(slot + 1)
	}
}

// patch resolves every dangling edge to target.
func (b *Builder) patch(edges []dangling, target StateID) {
	for _, d := range edges {
		b.states[d.state].edges[d.slot].Target = target
	}
}

// fragEmpty builds the Empty fragment: one state with a single dangling ε
// edge.
func (b *Builder) fragEmpty() fragment {
	id := b.addState()
	b.setEdge(id, 0, Epsilon, InvalidState)
	return fragment{start: id, dangling: []dangling{{id, 0}}}
}

// fragChar builds the Char(c) fragment: one state with a single dangling
// c-labeled edge.
func (b *Builder) fragChar(c byte) fragment {
	id := b.addState()
	b.setEdge(id, 0, CharToken(c), InvalidState)
	return fragment{start: id, dangling: []dangling{{id, 0}}}
}

// concat patches every dangling edge of left to right's start; the result
// keeps left's start and right's dangling edges.
func (b *Builder) concat(left, right fragment) fragment {
	b.patch(left.dangling, right.start)
	return fragment{start: left.start, dangling: right.dangling}
}

// alternate creates a new fork state with ε edges to both branch starts;
// the result's dangling set is the union of both branches'.
func (b *Builder) alternate(left, right fragment) fragment {
	fork := b.addState()
	b.setEdge(fork, 0, Epsilon, left.start)
	b.setEdge(fork, 1, Epsilon, right.start)
	dangling := append(append([]dangling{}, left.dangling...), right.dangling...)
	return fragment{start: fork, dangling: dangling}
}

// oneOrMore builds a loop state with an ε edge back to arg.start (taken
// after arg's dangling edges are patched to it) and one dangling ε edge out.
// The fragment's start is arg.start, so at least one pass through arg is
// mandatory.
func (b *Builder) oneOrMore(arg fragment) fragment {
	loop := b.addState()
	b.setEdge(loop, 0, Epsilon, arg.start)
	b.setEdge(loop, 1, Epsilon, InvalidState)
	b.patch(arg.dangling, loop)
	return fragment{start: arg.start, dangling: []dangling{{loop, 1}}}
}

// zeroOrMore is oneOrMore with the loop state itself as the fragment start,
// so arg can be skipped entirely.
func (b *Builder) zeroOrMore(arg fragment) fragment {
	loop := b.addState()
	b.setEdge(loop, 0, Epsilon, arg.start)
	b.setEdge(loop, 1, Epsilon, InvalidState)
	b.patch(arg.dangling, loop)
	return fragment{start: loop, dangling: []dangling{{loop, 1}}}
}

// zeroOrOne creates a fork state with one ε edge to arg.start and one
// dangling ε edge; the result can skip arg via the dangling edge or take it
// and fall through arg's own dangling edges.
func (b *Builder) zeroOrOne(arg fragment) fragment {
	fork := b.addState()
	b.setEdge(fork, 0, Epsilon, arg.start)
	b.setEdge(fork, 1, Epsilon, InvalidState)
	dangling := append(append([]dangling{}, arg.dangling...), dangling{fork, 1})
	return fragment{start: fork, dangling: dangling}
}
