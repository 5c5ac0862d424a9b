// Package ast defines the tree the parser driver builds and the evaluator
// walks. Every node is tagged with a Kind from a closed enum (spec §3); the
// shape of a node's Children and which payload field is meaningful both
// follow from that tag alone.
package ast

import (
	"github.com/plus-lang/plus/internal/bigint"
	"github.com/plus-lang/plus/internal/lexer"
)

// Kind tags an AST node. The set matches spec §3's ASTNode taxonomy
// exactly; it does not grow with the grammar's productions (several
// productions share a Kind via a passthrough semantic action).
type Kind int

const (
	Program Kind = iota
	StatementList
	Declaration
	Assignment
	Increment
	Decrement
	WriteStatement
	OutputList
	// ListElement is part of the Kind taxonomy but never constructed: the
	// grammar's ListElement production is pure passthrough, so its child
	// (an IntValue, StringLiteral, or Newline node) reaches the tree
	// directly in ListElement's place.
	ListElement
	LoopStatement
	CodeBlock
	Identifier
	IntegerLiteral
	StringLiteral
	Newline
	IntValue
	Keyword
)

var kindNames = [...]string{
	Program:        "Program",
	StatementList:  "StatementList",
	Declaration:    "Declaration",
	Assignment:     "Assignment",
	Increment:      "Increment",
	Decrement:      "Decrement",
	WriteStatement: "WriteStatement",
	OutputList:     "OutputList",
	ListElement:    "ListElement",
	LoopStatement:  "LoopStatement",
	CodeBlock:      "CodeBlock",
	Identifier:     "Identifier",
	IntegerLiteral: "IntegerLiteral",
	StringLiteral:  "StringLiteral",
	Newline:        "Newline",
	IntValue:       "IntValue",
	Keyword:        "Keyword",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Node is one tree node. Which of Name, Int, Text carries a payload is
// determined entirely by Kind:
//
//	Identifier     -> Name
//	IntegerLiteral -> Int
//	StringLiteral  -> Text (quotes stripped)
//	Keyword        -> Text (the matched lexeme, e.g. "number", ":=", "{")
//	Declaration/Assignment/Increment/Decrement -> Name (the target identifier)
//
// Every other Kind carries no payload; its meaning comes entirely from its
// Children, in left-to-right order of the matched production.
type Node struct {
	Kind     Kind
	Pos      lexer.Position
	Children []*Node

	Name string
	Int  bigint.Int
	Text string
}

// NewLeaf builds a childless node from a shifted token, per the parser
// driver's shift rule (spec §4.7): IDENT becomes Identifier, INT becomes
// IntegerLiteral, STRING becomes StringLiteral with quotes stripped, the
// 'newline' keyword becomes Newline, and every other terminal becomes a
// Keyword node carrying its lexeme (used only as a location anchor by
// constructor actions, then discarded).
func NewLeaf(tok lexer.Token) *Node {
	switch tok.Kind {
	case lexer.IDENT:
		return &Node{Kind: Identifier, Pos: tok.Pos, Name: tok.Lexeme}
	case lexer.INT:
		return &Node{Kind: IntegerLiteral, Pos: tok.Pos, Int: tok.IntValue}
	case lexer.STRING:
		return &Node{Kind: StringLiteral, Pos: tok.Pos, Text: stripQuotes(tok.Lexeme)}
	case lexer.NEWLINE:
		return &Node{Kind: Newline, Pos: tok.Pos}
	default:
		return &Node{Kind: Keyword, Pos: tok.Pos, Text: tok.Lexeme}
	}
}

func stripQuotes(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
