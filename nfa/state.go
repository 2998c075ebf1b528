package nfa

import "fmt"

// StateID uniquely identifies an NFA state. States are stored in a flat
// arena (see Builder and NFA) and referenced by this dense index rather
// than by pointer, so that the ε-cycles introduced by * and + can be
// represented without any unsafe aliasing.
type StateID uint32

// InvalidState marks an edge whose target has not yet been patched, or a
// StateID that does not refer to any state.
const InvalidState StateID = 0xFFFFFFFF

// Token labels an NFA edge: either a literal byte or the ε marker. Epsilon
// is modeled as a distinct out-of-band value so that Token can still cheaply
// hold any byte value as a literal.
type Token int32

// Epsilon is the empty-string transition, taken without consuming input.
const Epsilon Token = -1

// CharToken returns the token for the literal byte c.
func CharToken(c byte) Token { return Token(c) }

// IsEpsilon reports whether t is the ε marker.
func (t Token) IsEpsilon() bool { return t == Epsilon }

// Byte returns the literal byte this token represents. Only valid when
// !t.IsEpsilon().
func (t Token) Byte() byte { return byte(t) }

// String renders the token the way the graph renderer expects: the empty
// string for ε, the literal character otherwise.
func (t Token) String() string {
	if t.IsEpsilon() {
		return ""
	}
	return string(rune(byte(t)))
}

// Edge is a single outgoing transition: take it on Token, land on Target.
type Edge struct {
	Token  Token
	Target StateID
}

// State is a single NFA state. Thompson construction never needs more than
// two outgoing edges per state (one for a literal/ε step, two for a Split),
// so edges are stored inline rather than in a slice.
type State struct {
	id       StateID
	edges    [2]Edge
	numEdges uint8
}

// ID returns the state's dense identifier, assigned at finalization.
func (s *State) ID() StateID { return s.id }

// Edges returns the state's outgoing (token, target) pairs.
func (s *State) Edges() []Edge { return s.edges[:s.numEdges] }

func (s *State) String() string {
	return fmt.Sprintf("State(%d, %d edges)", s.id, s.numEdges)
}
