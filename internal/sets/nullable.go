package sets

import "github.com/plus-lang/plus/internal/grammar"

// Nullable computes, for every nonterminal, whether it can derive the
// empty string. A production A -> X1...Xk makes A nullable when every Xi
// is itself a nullable nonterminal (terminals are never nullable); an
// empty right-hand side makes its left nullable directly. The computation
// iterates to a fixed point.
func Nullable(g *grammar.Grammar) map[int]bool {
	nullable := make(map[int]bool)
	for {
		changed := false
		for _, p := range g.Productions {
			if nullable[p.Left] {
				continue
			}
			if allNullable(g, nullable, p.Right) {
				nullable[p.Left] = true
				changed = true
			}
		}
		if !changed {
			return nullable
		}
	}
}

func allNullable(g *grammar.Grammar, nullable map[int]bool, symbols []int) bool {
	for _, s := range symbols {
		if g.IsTerminal(s) {
			return false
		}
		if !nullable[s] {
			return false
		}
	}
	return true
}
