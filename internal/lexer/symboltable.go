package lexer

// SymbolEntry is one row of the lexer's symbol table: a name, the token
// kind it resolves to, and whether it was seeded as a keyword.
type SymbolEntry struct {
	Name      string
	Kind      Kind
	IsKeyword bool
}

// keywordSeed lists the reserved words in the fixed canonical order spec §4.2
// requires: write, and, repeat, newline, times, number.
var keywordSeed = []struct {
	name string
	kind Kind
}{
	{"write", WRITE},
	{"and", AND},
	{"repeat", REPEAT},
	{"newline", NEWLINE},
	{"times", TIMES},
	{"number", NUMBER},
}

// SymbolTable is an insertion-ordered collection of identifiers and
// keywords, keyed by name. Keywords are seeded at construction; plain
// identifiers are appended the first time they are seen.
type SymbolTable struct {
	entries []SymbolEntry
	index   map[string]int
}

// NewSymbolTable builds a table pre-seeded with the PLUS keywords.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		index: make(map[string]int, len(keywordSeed)+16),
	}
	for _, kw := range keywordSeed {
		st.entries = append(st.entries, SymbolEntry{Name: kw.name, Kind: kw.kind, IsKeyword: true})
		st.index[kw.name] = len(st.entries) - 1
	}
	return st
}

// Lookup returns the entry and index for name, if present.
func (st *SymbolTable) Lookup(name string) (idx int, entry SymbolEntry, ok bool) {
	i, ok := st.index[name]
	if !ok {
		return 0, SymbolEntry{}, false
	}
	return i, st.entries[i], true
}

// Intern resolves name to its symbol-table index, inserting it as a fresh
// IDENT entry on first sight. Keywords are never inserted via Intern; they
// exist only through the keyword seed.
func (st *SymbolTable) Intern(name string) (idx int, entry SymbolEntry) {
	if i, e, ok := st.Lookup(name); ok {
		return i, e
	}
	e := SymbolEntry{Name: name, Kind: IDENT, IsKeyword: false}
	st.entries = append(st.entries, e)
	i := len(st.entries) - 1
	st.index[name] = i
	return i, e
}

// Entry returns the symbol-table row at idx.
func (st *SymbolTable) Entry(idx int) SymbolEntry {
	return st.entries[idx]
}

// Len reports the number of entries, keywords included.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}
