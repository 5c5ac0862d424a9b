package lr

import "fmt"

// ActionKind distinguishes the three non-error shapes an ACTION entry can
// take; an error entry is represented by the entry being absent.
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION[state, terminal] entry. State is meaningful only
// for Shift (the next state); Prod is meaningful only for Reduce (the
// production to reduce by).
type Action struct {
	Kind  ActionKind
	State int
	Prod  int
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("shift(%d)", a.State)
	case Reduce:
		return fmt.Sprintf("reduce(%d)", a.Prod)
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

type actionKey struct{ State, Terminal int }
type gotoKey struct{ State, Nonterminal int }

// Conflict records an attempt to overwrite a non-error ACTION entry with a
// different action: spec §4.6 requires state id, terminal name, both
// actions and the affected productions to be reported.
type Conflict struct {
	State        int
	Terminal     int
	TerminalName string
	Existing     Action
	New          Action
}

func (c Conflict) String() string {
	kind := "reduce-reduce"
	if c.Existing.Kind == Shift || c.New.Kind == Shift {
		kind = "shift-reduce"
	}
	return fmt.Sprintf("%s conflict in state %d on %q: %s vs %s", kind, c.State, c.TerminalName, c.Existing, c.New)
}

// Tables is the synthesized ACTION/GOTO pair for a grammar's canonical
// collection.
type Tables struct {
	Action    map[actionKey]Action
	Goto      map[gotoKey]int
	NumStates int
}

// ActionAt looks up ACTION[state, terminal].
func (t *Tables) ActionAt(state, terminal int) (Action, bool) {
	a, ok := t.Action[actionKey{state, terminal}]
	return a, ok
}

// GotoAt looks up GOTO[state, nonterminal].
func (t *Tables) GotoAt(state, nonterminal int) (int, bool) {
	s, ok := t.Goto[gotoKey{state, nonterminal}]
	return s, ok
}

// BuildTables synthesizes ACTION/GOTO from the canonical collection,
// following spec §4.6 exactly: shift on a terminal past the dot, accept
// on the augmented production's completed item with EOF lookahead,
// reduce on any other completed item per its lookahead, and GOTO on every
// nonterminal transition. No implicit precedence rule resolves a
// conflicting overwrite — every one is reported and returned alongside the
// (possibly inconsistent) tables so callers can inspect both.
func BuildTables(s *Sets, coll *Collection) (*Tables, []Conflict) {
	tables := &Tables{
		Action:    make(map[actionKey]Action),
		Goto:      make(map[gotoKey]int),
		NumStates: len(coll.States),
	}
	var conflicts []Conflict

	setAction := func(state, terminal int, a Action) {
		key := actionKey{state, terminal}
		if existing, ok := tables.Action[key]; ok {
			if existing == a {
				return
			}
			conflicts = append(conflicts, Conflict{
				State:        state,
				Terminal:     terminal,
				TerminalName: s.Grammar.SymbolName(terminal),
				Existing:     existing,
				New:          a,
			})
			return
		}
		tables.Action[key] = a
	}

	for _, st := range coll.States {
		for core, la := range st.Items {
			prod := s.Grammar.Productions[core.Prod]
			if core.Dot < len(prod.Right) {
				sym := prod.Right[core.Dot]
				if !s.Grammar.IsTerminal(sym) {
					continue
				}
				target, ok := coll.Transitions[st.ID][sym]
				if !ok {
					continue
				}
				setAction(st.ID, sym, Action{Kind: Shift, State: target})
				continue
			}
			// Dot at end: accept for the augmented production with EOF
			// lookahead, reduce otherwise.
			for _, a := range la.Elements() {
				if prod.Left == s.Grammar.Start && a == s.Grammar.EOF {
					setAction(st.ID, a, Action{Kind: Accept})
					continue
				}
				setAction(st.ID, a, Action{Kind: Reduce, Prod: prod.ID})
			}
		}
		for sym, target := range coll.Transitions[st.ID] {
			if s.Grammar.IsTerminal(sym) {
				continue
			}
			tables.Goto[gotoKey{st.ID, sym}] = target
		}
	}

	return tables, conflicts
}
