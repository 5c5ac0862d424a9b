package lr

import "github.com/plus-lang/plus/internal/sets"

// State is one node of the canonical collection: a dense id and its item
// set. Two states are equal iff their item sets are equal, lookaheads
// included (spec §3, ItemSet).
type State struct {
	ID    int
	Items ItemSet
}

// Collection is the canonical LR(1) collection: states in discovery order
// plus the Goto transitions between them, keyed by (state id, symbol id).
type Collection struct {
	States      []State
	Transitions map[int]map[int]int
}

// BuildCollection initializes with Closure({[S' -> . S, EOF]}) and
// breadth-first expands by computing Goto over every symbol following a
// dot in the current state, deduplicating by item-set equality. States
// receive dense ids in discovery order; state 0 is the initial state
// (spec §4.5).
func BuildCollection(s *Sets) *Collection {
	eof := sets.NewTerminalSet()
	eof.Add(s.Grammar.EOF)
	start := s.Closure(ItemSet{{Prod: 0, Dot: 0}: eof})

	coll := &Collection{
		States:      []State{{ID: 0, Items: start}},
		Transitions: make(map[int]map[int]int),
	}

	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, X := range symbolsAfterDot(s, coll.States[id].Items) {
			target := s.Goto(coll.States[id].Items, X)
			if target == nil {
				continue
			}
			targetID, isNew := coll.findOrAppend(target)
			if isNew {
				queue = append(queue, targetID)
			}
			if coll.Transitions[id] == nil {
				coll.Transitions[id] = make(map[int]int)
			}
			coll.Transitions[id][X] = targetID
		}
	}
	return coll
}

// findOrAppend returns the id of an existing state equal to items, or
// appends a new one and returns its fresh id plus true.
func (c *Collection) findOrAppend(items ItemSet) (int, bool) {
	for _, st := range c.States {
		if st.Items.equal(items) {
			return st.ID, false
		}
	}
	id := len(c.States)
	c.States = append(c.States, State{ID: id, Items: items})
	return id, true
}

// symbolsAfterDot returns, in ascending order, every distinct symbol that
// follows a dot in some item of I.
func symbolsAfterDot(s *Sets, I ItemSet) []int {
	seen := make(map[int]bool)
	for core := range I {
		if sym, ok := dotSymbol(s.Grammar, core); ok {
			seen[sym] = true
		}
	}
	out := make([]int, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
