// Package order supplies the naive branching heuristic used by the demo
// driver in cmd/cdclsolve. Branching heuristics are explicitly outside the
// scope of the primitives core (spec §1): this package is a collaborator
// of internal/sat, not part of it, and exists only so the core is
// end-to-end runnable and testable against the scenarios in spec §8.
package order

import (
	"github.com/rhartert/yagh"

	"github.com/cdclsat/satkernel/internal/sat"
)

// NaiveOrder always selects the lowest-index free variable, positive
// polarity, matching the heuristic spec §8's worked scenarios (S1-S5) are
// defined against. It is backed by the same binary-heap structure
// rhartert/yass uses for its (considerably less naive) VSIDS ordering.
type NaiveOrder struct {
	heap *yagh.IntMap[int]
}

// NewNaiveOrder returns an order over variables 1..numVars.
func NewNaiveOrder(numVars int) *NaiveOrder {
	h := yagh.New[int](0)
	h.GrowBy(numVars)
	for v := 1; v <= numVars; v++ {
		h.Put(v, v)
	}
	return &NaiveOrder{heap: h}
}

// Next pops variables from the heap (lowest index first) until it finds one
// that is still free, and returns its positive literal. Every popped
// variable is put back before returning, so a variable freed again by
// backjumping is found on a later call. The second return value is false
// once every variable has been instantiated.
func (o *NaiveOrder) Next(s *sat.State) (sat.Literal, bool) {
	var popped []int
	defer func() {
		for _, v := range popped {
			o.heap.Put(v, v)
		}
	}()
	for {
		item, ok := o.heap.Pop()
		if !ok {
			return 0, false
		}
		popped = append(popped, item.Elem)
		v := sat.VarID(item.Elem)
		if !s.InstantiatedVar(s.IndexToVar(v)) {
			return s.PosLiteralOf(s.IndexToVar(v)), true
		}
	}
}
