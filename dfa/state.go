// Package dfa implements the two DFA-producing stages of the pipeline:
// subset construction (Determinize) over an NFA, and partition-refinement
// minimization (Minimize) over a DFA. Both stages share one DFA/State
// representation, stored arena-style and addressed by StateID for the same
// reason as package nfa — see that package's doc comment.
package dfa

import (
	"fmt"
	"sort"

	"github.com/coregx/rxfsa/nfa"
)

// StateID uniquely identifies a DFA state within its DFA.
type StateID uint32

// InvalidState marks the absence of a state.
const InvalidState StateID = 0xFFFFFFFF

// Transition is one (token, target) pair in a state's transition table,
// exposed in ascending token order for deterministic traversal (rendering,
// testing) even though map iteration itself is not ordered.
type Transition struct {
	Token  byte
	Target StateID
}

// State is a single DFA state: a frozen provenance set of NFA state ids
// (used during determinization for deduplication, kept afterward only for
// detailed rendering), a transition table total over the DFA's alphabet,
// and the two derived flags from spec §3.
type State struct {
	id     StateID
	nfaSet []nfa.StateID
	trans  map[byte]StateID
	isEnd  bool
	isDead bool
}

// ID returns the state's dense identifier.
func (s *State) ID() StateID { return s.id }

// IsEnd reports whether this state's NFA-set contains the NFA's accepting
// state.
func (s *State) IsEnd() bool { return s.isEnd }

// IsDead reports whether this state is non-accepting and every one of its
// transitions loops back to itself.
func (s *State) IsDead() bool { return s.isDead }

// NFAStates returns the provenance set of NFA state ids this DFA state
// represents, for detailed rendering. Sorted ascending.
func (s *State) NFAStates() []nfa.StateID { return s.nfaSet }

// Transition returns the target of the transition on tok and whether one
// exists. Before the dead-state fixup in Determinize, a state's table may
// not yet be total over the alphabet.
func (s *State) Transition(tok byte) (StateID, bool) {
	target, ok := s.trans[tok]
	return target, ok
}

// Transitions returns every (token, target) pair for this state, sorted by
// token ascending.
func (s *State) Transitions() []Transition {
	out := make([]Transition, 0, len(s.trans))
	for tok, target := range s.trans {
		out = append(out, Transition{Token: tok, Target: target})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Token < out[j].Token })
	return out
}

func (s *State) String() string {
	return fmt.Sprintf("State(%d, end=%v, dead=%v, %d transitions)", s.id, s.isEnd, s.isDead, len(s.trans))
}

// DFA is a deterministic finite automaton: a start state, an alphabet (the
// non-ε tokens that appear anywhere in the source NFA), and a list of
// states whose transition tables are total over that alphabet once
// Determinize has finished.
type DFA struct {
	states   []State
	start    StateID
	alphabet []byte
}

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return d.start }

// States returns every state in the DFA, indexed by StateID.
func (d *DFA) States() []State { return d.states }

// State returns the state with the given id.
func (d *DFA) State(id StateID) *State { return &d.states[id] }

// Len returns the number of states in the DFA.
func (d *DFA) Len() int { return len(d.states) }

// Tokens returns the DFA's alphabet, sorted ascending.
func (d *DFA) Tokens() []byte { return d.alphabet }

// Accepts reports whether w is in the language of the DFA: walk the
// transition table byte by byte from the start state, rejecting immediately
// on any undefined transition (only possible when w contains a byte
// outside the DFA's alphabet), and check is_end on arrival.
func (d *DFA) Accepts(w []byte) bool {
	cur := d.start
	for _, b := range w {
		next, ok := d.states[cur].trans[b]
		if !ok {
			return false
		}
		cur = next
	}
	return d.states[cur].isEnd
}

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, start: %d, alphabet: %d}", len(d.states), d.start, len(d.alphabet))
}
