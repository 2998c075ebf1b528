package dfa

import (
	"sort"

	"github.com/coregx/rxfsa/nfa"
)

// Minimize collapses d into its minimal equivalent DFA via partition
// refinement, per spec §4.4: start from the coarsest partition that
// separates accepting from non-accepting states, then repeatedly refine
// each block by the first token that distinguishes its members, until a
// full pass leaves the block count unchanged.
func Minimize(d *DFA) *DFA {
	blocks := initialPartition(d)
	for {
		stateToBlock := indexBlocks(blocks)
		next := make([][]StateID, 0, len(blocks))
		for _, blk := range blocks {
			next = append(next, splitBlock(blk, stateToBlock, d)...)
		}
		if len(next) == len(blocks) {
			blocks = next
			break
		}
		blocks = next
	}
	return buildQuotient(d, blocks)
}

// initialPartition splits every state into the accepting block and the
// non-accepting block, omitting either if empty.
func initialPartition(d *DFA) [][]StateID {
	var nonAcc, acc []StateID
	for i := range d.states {
		s := &d.states[i]
		if s.isEnd {
			acc = append(acc, s.id)
		} else {
			nonAcc = append(nonAcc, s.id)
		}
	}
	var blocks [][]StateID
	if len(nonAcc) > 0 {
		blocks = append(blocks, nonAcc)
	}
	if len(acc) > 0 {
		blocks = append(blocks, acc)
	}
	return blocks
}

func indexBlocks(blocks [][]StateID) map[StateID]int {
	idx := make(map[StateID]int)
	for bi, blk := range blocks {
		for _, s := range blk {
			idx[s] = bi
		}
	}
	return idx
}

// splitBlock tries each alphabet token in order looking for the first one
// whose target-block assignment is non-constant across blk; on the first
// such token it returns the resulting sub-blocks (grouped in first-seen
// order) and stops checking further tokens. If no token distinguishes any
// pair of states in blk, blk survives the pass intact.
func splitBlock(blk []StateID, stateToBlock map[StateID]int, d *DFA) [][]StateID {
	for _, tok := range d.alphabet {
		groups := make(map[int][]StateID)
		var order []int
		for _, s := range blk {
			target := d.states[s].trans[tok]
			g := stateToBlock[target]
			if _, ok := groups[g]; !ok {
				order = append(order, g)
			}
			groups[g] = append(groups[g], s)
		}
		if len(groups) > 1 {
			sub := make([][]StateID, 0, len(order))
			for _, g := range order {
				sub = append(sub, groups[g])
			}
			return sub
		}
	}
	return [][]StateID{blk}
}

// buildQuotient builds the minimized DFA from the final partition: one
// state per block, with the representative (the block's first member, in
// original-id order since blocks are built by scanning d.states ascending)
// supplying is_end/is_dead/transitions, and the nfa-set provenance taken as
// the union across every state folded into the block.
func buildQuotient(d *DFA, blocks [][]StateID) *DFA {
	blockOf := indexBlocks(blocks)

	type quotient struct {
		repr       StateID
		nfaSet     []nfa.StateID
		isEnd      bool
		isDead     bool
		transBlock map[byte]int
	}

	qs := make([]quotient, len(blocks))
	for bi, blk := range blocks {
		repr := blk[0]
		seen := make(map[nfa.StateID]bool)
		var nfaSet []nfa.StateID
		for _, s := range blk {
			for _, id := range d.states[s].nfaSet {
				if !seen[id] {
					seen[id] = true
					nfaSet = append(nfaSet, id)
				}
			}
		}
		sort.Slice(nfaSet, func(i, j int) bool { return nfaSet[i] < nfaSet[j] })

		reprState := &d.states[repr]
		transBlock := make(map[byte]int, len(d.alphabet))
		for _, tok := range d.alphabet {
			transBlock[tok] = blockOf[reprState.trans[tok]]
		}

		qs[bi] = quotient{
			repr:       repr,
			nfaSet:     nfaSet,
			isEnd:      reprState.isEnd,
			isDead:     reprState.isDead,
			transBlock: transBlock,
		}
	}

	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return qs[order[i]].repr < qs[order[j]].repr })

	newIDFor := make([]StateID, len(blocks))
	for newID, oldBI := range order {
		newIDFor[oldBI] = StateID(newID)
	}

	states := make([]State, len(blocks))
	for newID, oldBI := range order {
		q := qs[oldBI]
		trans := make(map[byte]StateID, len(q.transBlock))
		for tok, bi := range q.transBlock {
			trans[tok] = newIDFor[bi]
		}
		states[newID] = State{
			id:     StateID(newID),
			nfaSet: q.nfaSet,
			trans:  trans,
			isEnd:  q.isEnd,
			isDead: q.isDead,
		}
	}

	return &DFA{
		states:   states,
		start:    newIDFor[blockOf[d.start]],
		alphabet: append([]byte{}, d.alphabet...),
	}
}
