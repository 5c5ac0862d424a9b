package sets

import "github.com/plus-lang/plus/internal/grammar"

// First computes FIRST(A) for every nonterminal A: the terminals that can
// begin some sentential form derived from A. For each production
// A -> X1...Xk, each Xi contributes terminals in order — a terminal
// contributes itself and stops the walk; a nonterminal contributes
// FIRST(Xi) and stops the walk unless Xi is nullable. The computation
// iterates to a fixed point.
func First(g *grammar.Grammar, nullable map[int]bool) map[int]TerminalSet {
	first := make(map[int]TerminalSet)
	for _, nt := range g.Nonterminals() {
		first[nt] = NewTerminalSet()
	}
	for {
		changed := false
		for _, p := range g.Productions {
			set := first[p.Left]
			for _, sym := range p.Right {
				if g.IsTerminal(sym) {
					if set.Add(sym) {
						changed = true
					}
					break
				}
				if set.Union(first[sym]) {
					changed = true
				}
				if !nullable[sym] {
					break
				}
			}
		}
		if !changed {
			return first
		}
	}
}

// FirstOfSequence computes FIRST of a symbol sequence followed by a
// trailing lookahead set, the nullable-aware walk used both by FOLLOW and
// by LR(1) closure: each symbol contributes its FIRST set and the walk
// stops at the first non-nullable symbol; if the whole sequence is
// nullable, the trailing set is folded in too.
func FirstOfSequence(g *grammar.Grammar, nullable map[int]bool, first map[int]TerminalSet, seq []int, trailing TerminalSet) TerminalSet {
	out := NewTerminalSet()
	for _, sym := range seq {
		if g.IsTerminal(sym) {
			out.Add(sym)
			return out
		}
		out.Union(first[sym])
		if !nullable[sym] {
			return out
		}
	}
	out.Union(trailing)
	return out
}
