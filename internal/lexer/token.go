package lexer

import "github.com/plus-lang/plus/internal/bigint"

// Kind identifies the lexical category of a Token. The set is closed: the
// PLUS grammar (spec §6) never grows new terminal kinds at runtime.
type Kind int

const (
	ILLEGAL Kind = iota // unrecoverable lexical error; carries no further tokens
	EOF

	IDENT
	INT
	STRING

	// Punctuation
	PLUS       // +
	STAR       // * (lexically valid, unused by the grammar)
	ASSIGN     // :=
	PLUSEQ     // +=
	MINUSEQ    // -=
	SEMI       // ;
	LBRACE     // {
	RBRACE     // }
	LPAREN     // (
	RPAREN     // )

	// Keywords
	WRITE
	AND
	REPEAT
	NEWLINE
	TIMES
	NUMBER

	kindCount
)

var kindNames = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	IDENT:   "IDENT",
	INT:     "INT",
	STRING:  "STRING",
	PLUS:    "+",
	STAR:    "*",
	ASSIGN:  ":=",
	PLUSEQ:  "+=",
	MINUSEQ: "-=",
	SEMI:    ";",
	LBRACE:  "{",
	RBRACE:  "}",
	LPAREN:  "(",
	RPAREN:  ")",
	AND:     "and",
	WRITE:   "write",
	REPEAT:  "repeat",
	NEWLINE: "newline",
	TIMES:   "times",
	NUMBER:  "number",
}

// String renders the display name used in diagnostics and grammar dumps.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// NumKinds reports the number of distinct token kinds, i.e. the dense
// terminal-id range [0, NumKinds()) a grammar built over this lexer uses.
func NumKinds() int { return int(kindCount) }

// IsKeyword reports whether k is one of the reserved PLUS keywords.
func (k Kind) IsKeyword() bool {
	return k == AND || k == WRITE || k == REPEAT || k == NEWLINE || k == TIMES || k == NUMBER
}

// Token is a tagged value produced by the lexer. Payload fields are
// meaningful only for the Kind that defines them: SymbolIndex for IDENT,
// IntValue for INT, Lexeme (quotes included) for STRING.
type Token struct {
	Kind        Kind
	Lexeme      string
	Pos         Position
	SymbolIndex int
	IntValue    bigint.Int
}
