// Package sets computes the three interlocking fixed points the LR(1)
// toolkit needs — Nullable, FIRST and FOLLOW — over a grammar.Grammar.
package sets

import "sort"

// TerminalSet is a set of terminal ids. Equality is by extension; Union
// reports whether it changed the receiver, which drives the fixed-point
// loops in nullable.go/first.go/follow.go.
type TerminalSet struct {
	present map[int]bool
}

// NewTerminalSet returns an empty set.
func NewTerminalSet() TerminalSet {
	return TerminalSet{present: make(map[int]bool)}
}

// Add inserts id, reporting whether the set changed.
func (s TerminalSet) Add(id int) bool {
	if s.present[id] {
		return false
	}
	s.present[id] = true
	return true
}

// Contains reports whether id is a member.
func (s TerminalSet) Contains(id int) bool {
	return s.present[id]
}

// Len reports the number of members.
func (s TerminalSet) Len() int {
	return len(s.present)
}

// Union adds every member of other into s, reporting whether s changed.
func (s TerminalSet) Union(other TerminalSet) bool {
	changed := false
	for id := range other.present {
		if s.Add(id) {
			changed = true
		}
	}
	return changed
}

// Clone returns an independent copy.
func (s TerminalSet) Clone() TerminalSet {
	out := NewTerminalSet()
	for id := range s.present {
		out.present[id] = true
	}
	return out
}

// Equal reports whether s and other contain exactly the same ids.
func (s TerminalSet) Equal(other TerminalSet) bool {
	if len(s.present) != len(other.present) {
		return false
	}
	for id := range s.present {
		if !other.present[id] {
			return false
		}
	}
	return true
}

// Elements returns the members in ascending order, for deterministic
// iteration and diagnostics.
func (s TerminalSet) Elements() []int {
	out := make([]int, 0, len(s.present))
	for id := range s.present {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
