package grammar

import "testing"

// A minimal two-production grammar: S -> a S | a, used to exercise the
// builder and augmentation in isolation from the PLUS grammar.
func buildTiny() *Grammar {
	const (
		termA = iota
		termEOF
	)
	const nonS = termEOF + 1

	b := NewBuilder(2, termEOF)
	b.Terminal(termA, "a")
	b.Terminal(termEOF, "$")
	b.Nonterminal(nonS, "S")
	b.Goal(nonS)
	b.Production(nonS, []int{termA, nonS}, 0)
	b.Production(nonS, []int{termA}, 1)
	return b.Build()
}

func TestBuildAugmentsProductionZero(t *testing.T) {
	g := buildTiny()
	if g.Productions[0].ID != 0 {
		t.Fatalf("production 0 id = %d, want 0", g.Productions[0].ID)
	}
	if g.Productions[0].Left != g.Start {
		t.Errorf("production 0 left = %d, want augmented start %d", g.Productions[0].Left, g.Start)
	}
	if len(g.Productions[0].Right) != 1 || g.Productions[0].Right[0] != g.OriginalGoal {
		t.Errorf("production 0 rhs = %v, want [%d]", g.Productions[0].Right, g.OriginalGoal)
	}
}

func TestProductionsAreDenselyNumbered(t *testing.T) {
	g := buildTiny()
	for i, p := range g.Productions {
		if p.ID != i {
			t.Errorf("production %d has id %d", i, p.ID)
		}
	}
}

func TestIsTerminalAndSymbolName(t *testing.T) {
	g := buildTiny()
	if !g.IsTerminal(0) {
		t.Errorf("terminal 0 misclassified")
	}
	if g.IsTerminal(g.Start) {
		t.Errorf("augmented start misclassified as terminal")
	}
	if g.SymbolName(g.Start) != "S'" {
		t.Errorf("augmented start name = %q, want S'", g.SymbolName(g.Start))
	}
}

func TestProductionsFor(t *testing.T) {
	g := buildTiny()
	prods := g.ProductionsFor(g.OriginalGoal)
	if len(prods) != 2 {
		t.Fatalf("got %d productions for goal, want 2", len(prods))
	}
}
