package lr

import (
	"github.com/plus-lang/plus/internal/grammar"
	"github.com/plus-lang/plus/internal/sets"
)

// Sets bundles the grammar-wide fixed points Closure and Goto need, so
// callers compute Nullable/First once per grammar instance and thread it
// through instead of recomputing per state.
type Sets struct {
	Grammar  *grammar.Grammar
	Nullable map[int]bool
	First    map[int]sets.TerminalSet
}

// NewSets runs Nullable, First and (for convenience elsewhere) exposes
// them bundled for the LR(1) constructor.
func NewSets(g *grammar.Grammar) *Sets {
	nullable := sets.Nullable(g)
	first := sets.First(g, nullable)
	return &Sets{Grammar: g, Nullable: nullable, First: first}
}

// Closure computes the smallest superset of I closed under predictive
// expansion: for every item [A -> alpha . B beta, a] with B a nonterminal,
// L = FIRST(beta a) (nullable-aware; L = {a} when beta = epsilon) is
// computed once per item, and every production B -> gamma contributes
// [B -> . gamma, b] for each b in L, merging into any existing item with
// the same core.
func (s *Sets) Closure(I ItemSet) ItemSet {
	result := I.clone()
	for {
		changed := false
		for core, la := range result {
			sym, ok := dotSymbol(s.Grammar, core)
			if !ok || s.Grammar.IsTerminal(sym) {
				continue
			}
			prod := s.Grammar.Productions[core.Prod]
			beta := prod.Right[core.Dot+1:]
			L := sets.FirstOfSequence(s.Grammar, s.Nullable, s.First, beta, la)
			for _, p := range s.Grammar.ProductionsFor(sym) {
				newCore := Core{Prod: p.ID, Dot: 0}
				if _, ok := result[newCore]; !ok {
					result[newCore] = sets.NewTerminalSet()
					changed = true
				}
				if result[newCore].Union(L) {
					changed = true
				}
			}
		}
		if !changed {
			return result
		}
	}
}

// Goto advances the dot past X in every item of I that has X immediately
// after its dot, then takes Closure. Returns nil if no item advances (the
// empty Goto spec §4.5 says to drop).
func (s *Sets) Goto(I ItemSet, X int) ItemSet {
	moved := make(ItemSet)
	for core, la := range I {
		sym, ok := dotSymbol(s.Grammar, core)
		if !ok || sym != X {
			continue
		}
		newCore := Core{Prod: core.Prod, Dot: core.Dot + 1}
		if _, ok := moved[newCore]; !ok {
			moved[newCore] = sets.NewTerminalSet()
		}
		moved[newCore].Union(la)
	}
	if len(moved) == 0 {
		return nil
	}
	return s.Closure(moved)
}
