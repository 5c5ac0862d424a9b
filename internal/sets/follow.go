package sets

import "github.com/plus-lang/plus/internal/grammar"

// Follow computes FOLLOW(A) for every nonterminal A: the terminals that
// can appear immediately after A in some sentential form. FOLLOW of the
// start symbol always contains EOF. For each production B -> alpha A beta,
// FIRST(beta) (via the nullable-aware walk) is added to FOLLOW(A); if beta
// is wholly nullable (or empty), FOLLOW(B) is added to FOLLOW(A) too. The
// computation iterates to a fixed point.
func Follow(g *grammar.Grammar, nullable map[int]bool, first map[int]TerminalSet) map[int]TerminalSet {
	follow := make(map[int]TerminalSet)
	for _, nt := range g.Nonterminals() {
		follow[nt] = NewTerminalSet()
	}
	eof := NewTerminalSet()
	eof.Add(g.EOF)
	follow[g.Start].Union(eof)

	for {
		changed := false
		for _, p := range g.Productions {
			for i, sym := range p.Right {
				if g.IsTerminal(sym) {
					continue
				}
				beta := p.Right[i+1:]
				// FirstOfSequence already folds FOLLOW(left) in when beta is
				// wholly nullable (or empty), per its trailing-set contract.
				contrib := FirstOfSequence(g, nullable, first, beta, follow[p.Left])
				if follow[sym].Union(contrib) {
					changed = true
				}
			}
		}
		if !changed {
			return follow
		}
	}
}
