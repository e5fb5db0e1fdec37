package main

import "github.com/bits-and-blooms/bitset"

// domains maps each slot to the set of words still allowed in it, stored
// as a bitset over indices into Crossword.Words. Domains only ever shrink;
// the search clones the whole map before narrowing a branch, so a failed
// branch never leaks its pruning back to the caller.
type domains map[Variable]*bitset.BitSet

// newDomains gives every slot the full word list.
func newDomains(cw *Crossword) domains {
	d := make(domains, len(cw.Variables))
	n := uint(len(cw.Words))
	for _, v := range cw.Variables {
		b := bitset.New(n)
		for i := uint(0); i < n; i++ {
			b.Set(i)
		}
		d[v] = b
	}
	return d
}

func (d domains) clone() domains {
	cp := make(domains, len(d))
	for v, b := range d {
		cp[v] = b.Clone()
	}
	return cp
}

// EnforceNodeConsistency drops from every slot's domain the words whose
// length does not match the slot. Running it a second time changes nothing.
func (s *Solver) EnforceNodeConsistency() {
	for _, v := range s.cw.Variables {
		d := s.domains[v]
		for i, ok := d.NextSet(0); ok; i, ok = d.NextSet(i + 1) {
			if len(s.cw.Words[i]) != v.Length {
				d.Clear(i)
			}
		}
	}
}

// narrow pins a slot's domain to a single word, so that incremental
// propagation prunes the neighbors against the actual assignment.
func (s *Solver) narrow(v Variable, word string) {
	b := bitset.New(uint(len(s.cw.Words)))
	b.Set(s.cw.wordIndex[word])
	s.domains[v] = b
}
