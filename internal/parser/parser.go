// Package parser is the LR(1) driver (spec §4.7): it consumes a token
// stream against a grammar.Grammar and lr.Tables, maintaining a stack of
// (state, AST node) pairs and invoking the grammar's semantic actions on
// every reduce.
package parser

import (
	"fmt"

	"github.com/plus-lang/plus/internal/ast"
	"github.com/plus-lang/plus/internal/grammar"
	"github.com/plus-lang/plus/internal/lexer"
	"github.com/plus-lang/plus/internal/lr"
	"github.com/plus-lang/plus/internal/perror"
	"github.com/plus-lang/plus/internal/plusgrammar"
)

type stackEntry struct {
	state int
	node  *ast.Node
}

// Parser drives one parse over a token source.
type Parser struct {
	grammar *grammar.Grammar
	tables  *lr.Tables
	actions map[grammar.ActionID]plusgrammar.Action

	source string
	file   string
}

// New builds a Parser over g's tables. source and file are carried only to
// render perror.Error diagnostics with a caret; source may be empty.
func New(g *grammar.Grammar, tables *lr.Tables, actions map[grammar.ActionID]plusgrammar.Action, source, file string) *Parser {
	return &Parser{grammar: g, tables: tables, actions: actions, source: source, file: file}
}

// TokenSource is anything that yields a monotonic token stream ending in
// EOF or ILLEGAL, matching *lexer.Lexer's NextToken contract. Err lets the
// parser recover the originating lexer.LexErrorKind behind an ILLEGAL
// token instead of reporting every lexical failure as one generic kind.
type TokenSource interface {
	NextToken() lexer.Token
	Err() *lexer.LexError
}

// lexErrorKinds maps each lexer.LexErrorKind to the matching perror.Kind,
// keeping spec §7's lexical kinds distinctly reportable instead of
// collapsing them into KindSyntaxError.
var lexErrorKinds = map[lexer.LexErrorKind]perror.Kind{
	lexer.ErrUnknownCharacter:      perror.KindUnknownCharacter,
	lexer.ErrUnterminatedString:    perror.KindUnterminatedString,
	lexer.ErrUnterminatedComment:   perror.KindUnterminatedComment,
	lexer.ErrLexemeTooLong:         perror.KindLexemeTooLong,
	lexer.ErrIntegerLiteralTooLong: perror.KindIntegerLiteralTooLong,
	lexer.ErrInvalidOperator:       perror.KindInvalidOperator,
}

// Parse runs the shift/reduce/accept/error loop described in spec §4.7 and
// returns the Program node on success.
func (p *Parser) Parse(src TokenSource) (*ast.Node, error) {
	stack := []stackEntry{{state: 0}}
	tok := src.NextToken()

	for {
		if tok.Kind == lexer.ILLEGAL {
			return nil, p.lexError(src, tok)
		}

		top := stack[len(stack)-1]
		action, ok := p.tables.ActionAt(top.state, int(tok.Kind))
		if !ok {
			return nil, p.syntaxError(top.state, tok)
		}

		switch action.Kind {
		case lr.Shift:
			stack = append(stack, stackEntry{state: action.State, node: ast.NewLeaf(tok)})
			tok = src.NextToken()

		case lr.Reduce:
			prod := p.grammar.Productions[action.Prod]
			n := len(prod.Right)
			children := make([]*ast.Node, n)
			base := len(stack) - n
			for i := 0; i < n; i++ {
				children[i] = stack[base+i].node
			}
			stack = stack[:base]

			act, ok := p.actions[prod.Action]
			if !ok {
				return nil, fmt.Errorf("parser: production %d names unregistered action %d", prod.ID, prod.Action)
			}
			node := act(children)

			gotoState, ok := p.tables.GotoAt(stack[len(stack)-1].state, prod.Left)
			if !ok {
				return nil, fmt.Errorf("parser: no GOTO[%d, %s] after reducing production %d", stack[len(stack)-1].state, p.grammar.SymbolName(prod.Left), prod.ID)
			}
			stack = append(stack, stackEntry{state: gotoState, node: node})

		case lr.Accept:
			return stack[len(stack)-1].node, nil
		}
	}
}

func (p *Parser) syntaxError(state int, tok lexer.Token) error {
	msg := fmt.Sprintf("unexpected %s %q", tok.Kind, tok.Lexeme)
	return perror.New(perror.KindSyntaxError, tok.Pos, msg, p.source, p.file)
}

// lexError reports the lexer.LexError behind an ILLEGAL token under its
// own perror.Kind, falling back to KindSyntaxError only if the lexer
// somehow halted without recording one.
func (p *Parser) lexError(src TokenSource, tok lexer.Token) error {
	lexErr := src.Err()
	if lexErr == nil {
		return perror.New(perror.KindSyntaxError, tok.Pos, "lexical error: "+tok.Lexeme, p.source, p.file)
	}
	kind, ok := lexErrorKinds[lexErr.Kind]
	if !ok {
		kind = perror.KindSyntaxError
	}
	return perror.New(kind, lexErr.Pos, lexErr.Message, p.source, p.file)
}
