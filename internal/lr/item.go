// Package lr implements the canonical LR(1) construction: closure, goto,
// the canonical collection of item sets, and ACTION/GOTO table synthesis
// with conflict detection (spec §4.5, §4.6).
//
// Items with identical cores (production + dot) within the same state are
// stored once, with their lookaheads gathered into one set. This is only a
// compact representation of the state's (core, lookahead) pairs: states
// are compared lookaheads included and are never merged across, so the
// collection is canonical LR(1), not LALR.
package lr

import (
	"github.com/plus-lang/plus/internal/grammar"
	"github.com/plus-lang/plus/internal/sets"
)

// Core is an LR(1) item stripped of its lookahead: a production id and a
// dot position. Two items with the same core merge lookahead sets.
type Core struct {
	Prod int
	Dot  int
}

// ItemSet maps each core present in a state to its (merged) lookahead set.
type ItemSet map[Core]sets.TerminalSet

// clone returns an independent deep copy of I.
func (I ItemSet) clone() ItemSet {
	out := make(ItemSet, len(I))
	for c, la := range I {
		out[c] = la.Clone()
	}
	return out
}

// equal reports whether two item sets are equal as sets, lookaheads
// included — the equality the canonical-collection dedup relies on.
func (I ItemSet) equal(other ItemSet) bool {
	if len(I) != len(other) {
		return false
	}
	for c, la := range I {
		otherLA, ok := other[c]
		if !ok || !la.Equal(otherLA) {
			return false
		}
	}
	return true
}

// dotSymbol returns the symbol immediately after the dot in core, and
// whether the dot is not already at the end of the production.
func dotSymbol(g *grammar.Grammar, core Core) (int, bool) {
	prod := g.Productions[core.Prod]
	if core.Dot >= len(prod.Right) {
		return 0, false
	}
	return prod.Right[core.Dot], true
}
