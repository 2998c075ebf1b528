package dfa

import (
	"encoding/binary"
	"sort"
	"strings"

	"github.com/coregx/rxfsa/internal/sparse"
	"github.com/coregx/rxfsa/nfa"
)

// Determinize builds a DFA from n via subset construction, per spec §4.3:
// each DFA state is the ε-closure of a set of NFA states; transitions fan
// out over every non-ε token reachable from the set; the frontier is
// processed breadth-first starting from the ε-closure of the NFA's start
// state. Once every discovered state's transition table is built, a single
// shared dead state is introduced (lazily, only if needed) to total the
// tables over the full alphabet, and is_end / is_dead are derived last.
func Determinize(n *nfa.NFA) *DFA {
	alphabet := nfaAlphabet(n)

	states := make([]State, 0, n.Len())
	byKey := make(map[string]StateID)

	newState := func(set []nfa.StateID) StateID {
		id := StateID(len(states))
		states = append(states, State{id: id, nfaSet: set, trans: make(map[byte]StateID)})
		return id
	}

	closure := epsilonClosureFunc(n)

	startSet := closure([]nfa.StateID{n.Start()})
	startID := newState(startSet)
	byKey[closureKey(startSet)] = startID

	queue := []StateID{startID}
	for len(queue) > 0 {
		curID := queue[0]
		queue = queue[1:]
		cur := states[curID]

		byToken := make(map[byte][]nfa.StateID)
		for _, nfaID := range cur.nfaSet {
			for _, e := range n.State(nfaID).Edges() {
				if e.Token.IsEpsilon() {
					continue
				}
				tok := e.Token.Byte()
				byToken[tok] = append(byToken[tok], e.Target)
			}
		}

		for _, tok := range alphabet {
			targets, ok := byToken[tok]
			if !ok {
				continue
			}
			set := closure(targets)
			key := closureKey(set)
			id, ok := byKey[key]
			if !ok {
				id = newState(set)
				byKey[key] = id
				queue = append(queue, id)
			}
			cur.trans[tok] = id
		}
	}

	deadID := InvalidState
	for id := range states {
		for _, tok := range alphabet {
			if _, ok := states[id].trans[tok]; ok {
				continue
			}
			if deadID == InvalidState {
				deadID = newState(nil)
				for _, t := range alphabet {
					states[deadID].trans[t] = deadID
				}
			}
			states[id].trans[tok] = deadID
		}
	}

	for i := range states {
		for _, s := range states[i].nfaSet {
			if s == n.End() {
				states[i].isEnd = true
				break
			}
		}
	}
	for i := range states {
		if states[i].isEnd {
			continue
		}
		dead := true
		for _, tok := range alphabet {
			if states[i].trans[tok] != states[i].id {
				dead = false
				break
			}
		}
		states[i].isDead = dead && len(alphabet) > 0
	}

	return &DFA{states: states, start: startID, alphabet: alphabet}
}

// nfaAlphabet collects every non-ε token used anywhere in n, sorted
// ascending.
func nfaAlphabet(n *nfa.NFA) []byte {
	seen := make(map[byte]bool)
	for i := range n.States() {
		for _, e := range n.State(nfa.StateID(i)).Edges() {
			if !e.Token.IsEpsilon() {
				seen[e.Token.Byte()] = true
			}
		}
	}
	out := make([]byte, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// epsilonClosureFunc returns a closure computing the ε-closure of a set of
// NFA states, using a sparse.SparseSet to track visited states during the
// walk — the same structure the teacher package uses for the analogous
// closure computation, reused here for cheap repeated membership tests over
// a bounded id space. Each call allocates a fresh set.
func epsilonClosureFunc(n *nfa.NFA) func([]nfa.StateID) []nfa.StateID {
	capacity := uint32(n.Len())
	return func(seed []nfa.StateID) []nfa.StateID {
		set := sparse.NewSparseSet(capacity)
		stack := make([]nfa.StateID, 0, len(seed))
		for _, s := range seed {
			if !set.Contains(uint32(s)) {
				set.Insert(uint32(s))
				stack = append(stack, s)
			}
		}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range n.State(s).Edges() {
				if !e.Token.IsEpsilon() || e.Target == nfa.InvalidState {
					continue
				}
				if !set.Contains(uint32(e.Target)) {
					set.Insert(uint32(e.Target))
					stack = append(stack, e.Target)
				}
			}
		}

		vals := set.Values()
		ids := make([]nfa.StateID, len(vals))
		for i, v := range vals {
			ids[i] = nfa.StateID(v)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		return ids
	}
}

// closureKey builds a deduplication key for a sorted set of NFA state ids.
func closureKey(ids []nfa.StateID) string {
	var b strings.Builder
	buf := make([]byte, 4)
	for _, id := range ids {
		binary.LittleEndian.PutUint32(buf, uint32(id))
		b.Write(buf)
	}
	return b.String()
}
