package main

// arc is an ordered pair of slots: the first must stay consistent with
// the second. It is the unit of work in the propagation queue.
type arc struct {
	x, y Variable
}

// revise removes from x's domain every word with no supporting word in
// y's domain at their shared cell, and reports whether anything was
// removed. Slots that do not overlap are left untouched.
func (s *Solver) revise(x, y Variable) bool {
	ov, ok := s.cw.OverlapOf(x, y)
	if !ok {
		return false
	}

	dx, dy := s.domains[x], s.domains[y]
	revised := false
	for i, more := dx.NextSet(0); more; i, more = dx.NextSet(i + 1) {
		ch := s.cw.Words[i][ov.I]
		supported := false
		for j, m2 := dy.NextSet(0); m2; j, m2 = dy.NextSet(j + 1) {
			if s.cw.Words[j][ov.J] == ch {
				supported = true
				break
			}
		}
		if !supported {
			dx.Clear(i)
			revised = true
		}
	}
	return revised
}

// Propagate enforces arc consistency with a FIFO work queue. A nil seed
// starts from every overlapping ordered pair; the search instead seeds the
// arcs pointing at a freshly assigned slot. Whenever a revision shrinks
// x's domain, the arcs (z, x) for every other neighbor z are requeued,
// since z's support may have lived on the removed words. Returns false as
// soon as any domain empties.
func (s *Solver) Propagate(seed []arc) bool {
	queue := seed
	if seed == nil {
		queue = s.allArcs()
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !s.revise(a.x, a.y) {
			continue
		}
		if s.domains[a.x].None() {
			return false
		}
		for _, z := range s.cw.Neighbors(a.x) {
			if z != a.y {
				queue = append(queue, arc{z, a.x})
			}
		}
	}
	return true
}

func (s *Solver) allArcs() []arc {
	var arcs []arc
	for _, v := range s.cw.Variables {
		for _, n := range s.cw.Neighbors(v) {
			arcs = append(arcs, arc{v, n})
		}
	}
	return arcs
}

// seedArcs returns the arcs pointing at a freshly assigned slot.
func (s *Solver) seedArcs(v Variable) []arc {
	neighbors := s.cw.Neighbors(v)
	arcs := make([]arc, 0, len(neighbors))
	for _, n := range neighbors {
		arcs = append(arcs, arc{n, v})
	}
	return arcs
}
