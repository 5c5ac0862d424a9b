// Package plusgrammar is the concrete PLUS grammar (spec §6): it wires
// lexer.Kind terminals and a dense range of nonterminal ids into a
// grammar.Grammar, and supplies the semantic-action dispatch table the
// parser driver (internal/parser) invokes on every reduce.
package plusgrammar

import (
	"github.com/plus-lang/plus/internal/ast"
	"github.com/plus-lang/plus/internal/grammar"
	"github.com/plus-lang/plus/internal/lexer"
)

// Action ids. Every production names exactly one; the parser driver looks
// these up in ActionTable to get the Go func that builds its AST node.
const (
	actPassthrough grammar.ActionID = iota
	actProgram
	actStatementListSingleton
	actStatementListExtend
	actDeclaration
	actAssignment
	actIncrement
	actDecrement
	actWrite
	actLoop
	actCodeBlock
	actOutputListSingleton
	actOutputListExtend
	actIntValue
)

// Build assembles the augmented PLUS grammar. Terminal ids are lexer.Kind
// values directly (NumTerminals = lexer.NumKinds()); nonterminal ids start
// at that same boundary.
func Build() *grammar.Grammar {
	ids := newNonterminalIDs(lexer.NumKinds())

	b := grammar.NewBuilder(lexer.NumKinds(), int(lexer.EOF))
	for k := lexer.Kind(0); int(k) < lexer.NumKinds(); k++ {
		b.Terminal(int(k), k.String())
	}
	b.Nonterminal(ids.program, "Program")
	b.Nonterminal(ids.statementList, "StatementList")
	b.Nonterminal(ids.statement, "Statement")
	b.Nonterminal(ids.declaration, "Declaration")
	b.Nonterminal(ids.assignment, "Assignment")
	b.Nonterminal(ids.increment, "Increment")
	b.Nonterminal(ids.decrement, "Decrement")
	b.Nonterminal(ids.writeStatement, "WriteStatement")
	b.Nonterminal(ids.outputList, "OutputList")
	b.Nonterminal(ids.listElement, "ListElement")
	b.Nonterminal(ids.loopStatement, "LoopStatement")
	b.Nonterminal(ids.codeBlock, "CodeBlock")
	b.Nonterminal(ids.intValue, "IntValue")
	b.Goal(ids.program)

	t := func(k lexer.Kind) int { return int(k) }

	// Program -> StatementList
	b.Production(ids.program, []int{ids.statementList}, actProgram)

	// StatementList -> StatementList Statement | Statement
	b.Production(ids.statementList, []int{ids.statementList, ids.statement}, actStatementListExtend)
	b.Production(ids.statementList, []int{ids.statement}, actStatementListSingleton)

	// Statement -> Assignment ';' | Declaration ';' | Increment ';'
	//            | Decrement ';' | WriteStatement ';' | LoopStatement
	b.Production(ids.statement, []int{ids.assignment, t(lexer.SEMI)}, actPassthrough)
	b.Production(ids.statement, []int{ids.declaration, t(lexer.SEMI)}, actPassthrough)
	b.Production(ids.statement, []int{ids.increment, t(lexer.SEMI)}, actPassthrough)
	b.Production(ids.statement, []int{ids.decrement, t(lexer.SEMI)}, actPassthrough)
	b.Production(ids.statement, []int{ids.writeStatement, t(lexer.SEMI)}, actPassthrough)
	b.Production(ids.statement, []int{ids.loopStatement}, actPassthrough)

	// Declaration -> 'number' IDENT
	b.Production(ids.declaration, []int{t(lexer.NUMBER), t(lexer.IDENT)}, actDeclaration)

	// Assignment -> IDENT ':=' IntValue
	b.Production(ids.assignment, []int{t(lexer.IDENT), t(lexer.ASSIGN), ids.intValue}, actAssignment)

	// Increment -> IDENT '+=' IntValue
	b.Production(ids.increment, []int{t(lexer.IDENT), t(lexer.PLUSEQ), ids.intValue}, actIncrement)

	// Decrement -> IDENT '-=' IntValue
	b.Production(ids.decrement, []int{t(lexer.IDENT), t(lexer.MINUSEQ), ids.intValue}, actDecrement)

	// WriteStatement -> 'write' OutputList
	b.Production(ids.writeStatement, []int{t(lexer.WRITE), ids.outputList}, actWrite)

	// LoopStatement -> 'repeat' IntValue 'times' Statement
	//                | 'repeat' IntValue 'times' CodeBlock
	//
	// No conflict: Statement's alternatives all start with IDENT, 'number',
	// 'write' or 'repeat'; CodeBlock starts with '{'. The two alternatives
	// never share a lookahead terminal.
	b.Production(ids.loopStatement, []int{t(lexer.REPEAT), ids.intValue, t(lexer.TIMES), ids.statement}, actLoop)
	b.Production(ids.loopStatement, []int{t(lexer.REPEAT), ids.intValue, t(lexer.TIMES), ids.codeBlock}, actLoop)

	// CodeBlock -> '{' StatementList '}' | '{' StatementList '}' ';'
	//
	// The second alternative accepts the optional semicolon after a
	// brace-bodied repeat (`repeat n times { ... };`). It stays
	// conflict-free because ';' is never in FOLLOW(CodeBlock): a CodeBlock
	// ends a LoopStatement, which ends a Statement, and a Statement is only
	// ever followed by the start of another Statement, '}' or EOF.
	b.Production(ids.codeBlock, []int{t(lexer.LBRACE), ids.statementList, t(lexer.RBRACE)}, actCodeBlock)
	b.Production(ids.codeBlock, []int{t(lexer.LBRACE), ids.statementList, t(lexer.RBRACE), t(lexer.SEMI)}, actCodeBlock)

	// OutputList -> OutputList 'and' ListElement | ListElement
	b.Production(ids.outputList, []int{ids.outputList, t(lexer.AND), ids.listElement}, actOutputListExtend)
	b.Production(ids.outputList, []int{ids.listElement}, actOutputListSingleton)

	// ListElement -> IntValue | STRING | 'newline'
	b.Production(ids.listElement, []int{ids.intValue}, actPassthrough)
	b.Production(ids.listElement, []int{t(lexer.STRING)}, actPassthrough)
	b.Production(ids.listElement, []int{t(lexer.NEWLINE)}, actPassthrough)

	// IntValue -> INT | IDENT
	b.Production(ids.intValue, []int{t(lexer.INT)}, actIntValue)
	b.Production(ids.intValue, []int{t(lexer.IDENT)}, actIntValue)

	return b.Build()
}

type nonterminalIDs struct {
	program, statementList, statement             int
	declaration, assignment, increment, decrement int
	writeStatement, outputList, listElement       int
	loopStatement, codeBlock, intValue            int
}

func newNonterminalIDs(base int) nonterminalIDs {
	return nonterminalIDs{
		program:        base + 0,
		statementList:  base + 1,
		statement:      base + 2,
		declaration:    base + 3,
		assignment:     base + 4,
		increment:      base + 5,
		decrement:      base + 6,
		writeStatement: base + 7,
		outputList:     base + 8,
		listElement:    base + 9,
		loopStatement:  base + 10,
		codeBlock:      base + 11,
		intValue:       base + 12,
	}
}

// Action is the signature every semantic action implements: given the
// already-constructed child nodes (in RHS order, leaves already built by
// the parser driver's shift rule), produce the node the reduce replaces
// them with.
type Action func(children []*ast.Node) *ast.Node

// ActionTable resolves a grammar.ActionID to its Action implementation.
var ActionTable = map[grammar.ActionID]Action{
	actPassthrough:             passthrough,
	actProgram:                 buildProgram,
	actStatementListSingleton:  singleton(ast.StatementList),
	actStatementListExtend:     extend,
	actDeclaration:             buildDeclaration,
	actAssignment:              buildAssignment,
	actIncrement:               buildIncrement,
	actDecrement:               buildDecrement,
	actWrite:                   buildWrite,
	actLoop:                    buildLoop,
	actCodeBlock:               buildCodeBlock,
	actOutputListSingleton:     singleton(ast.OutputList),
	actOutputListExtend:        extend,
	actIntValue:                buildIntValue,
}

func passthrough(children []*ast.Node) *ast.Node {
	return children[0]
}

func buildProgram(children []*ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.Program, Pos: children[0].Pos, Children: children}
}

// singleton returns an action that wraps its one child into a fresh node
// of the given kind. Used for both StatementList -> Statement and
// OutputList -> ListElement, which share this shape but must not share a
// node Kind.
func singleton(kind ast.Kind) Action {
	return func(children []*ast.Node) *ast.Node {
		return &ast.Node{Kind: kind, Pos: children[0].Pos, Children: []*ast.Node{children[0]}}
	}
}

// extend appends the rightmost child onto the leftmost (already a list
// node), discarding any punctuation in between (e.g. the 'and' keyword in
// OutputList -> OutputList 'and' ListElement). The same shape serves both
// StatementList -> StatementList Statement and OutputList -> OutputList
// 'and' ListElement.
func extend(children []*ast.Node) *ast.Node {
	list := children[0]
	list.Children = append(list.Children, children[len(children)-1])
	return list
}

func buildDeclaration(children []*ast.Node) *ast.Node {
	ident := children[1]
	return &ast.Node{Kind: ast.Declaration, Pos: ident.Pos, Name: ident.Name, Children: []*ast.Node{ident}}
}

func buildAssignment(children []*ast.Node) *ast.Node {
	ident, intVal := children[0], children[2]
	return &ast.Node{Kind: ast.Assignment, Pos: ident.Pos, Name: ident.Name, Children: []*ast.Node{intVal}}
}

func buildIncrement(children []*ast.Node) *ast.Node {
	ident, intVal := children[0], children[2]
	return &ast.Node{Kind: ast.Increment, Pos: ident.Pos, Name: ident.Name, Children: []*ast.Node{intVal}}
}

func buildDecrement(children []*ast.Node) *ast.Node {
	ident, intVal := children[0], children[2]
	return &ast.Node{Kind: ast.Decrement, Pos: ident.Pos, Name: ident.Name, Children: []*ast.Node{intVal}}
}

func buildWrite(children []*ast.Node) *ast.Node {
	kw, list := children[0], children[1]
	return &ast.Node{Kind: ast.WriteStatement, Pos: kw.Pos, Children: []*ast.Node{list}}
}

func buildLoop(children []*ast.Node) *ast.Node {
	kw, count, body := children[0], children[1], children[3]
	return &ast.Node{Kind: ast.LoopStatement, Pos: kw.Pos, Children: []*ast.Node{count, body}}
}

func buildCodeBlock(children []*ast.Node) *ast.Node {
	lbrace, stmts := children[0], children[1]
	return &ast.Node{Kind: ast.CodeBlock, Pos: lbrace.Pos, Children: []*ast.Node{stmts}}
}

func buildIntValue(children []*ast.Node) *ast.Node {
	child := children[0]
	return &ast.Node{Kind: ast.IntValue, Pos: child.Pos, Children: []*ast.Node{child}}
}
