package parser

import (
	"testing"

	"github.com/plus-lang/plus/internal/ast"
	"github.com/plus-lang/plus/internal/lexer"
	"github.com/plus-lang/plus/internal/lr"
	"github.com/plus-lang/plus/internal/perror"
	"github.com/plus-lang/plus/internal/plusgrammar"
)

func newParser(t *testing.T, src string) (*Parser, *lexer.Lexer) {
	t.Helper()
	g := plusgrammar.Build()
	s := lr.NewSets(g)
	coll := lr.BuildCollection(s)
	tables, conflicts := lr.BuildTables(s, coll)
	if len(conflicts) != 0 {
		t.Fatalf("grammar has conflicts: %v", conflicts)
	}
	return New(g, tables, plusgrammar.ActionTable, src, "test.plus"), lexer.New(src, "test.plus")
}

func TestParseDeclarationAssignmentWrite(t *testing.T) {
	src := "number n; n := 3; write n and newline;"
	p, l := newParser(t, src)
	root, err := p.Parse(l)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if root.Kind != ast.Program {
		t.Fatalf("root.Kind = %v, want Program", root.Kind)
	}
	stmts := root.Children[0]
	if stmts.Kind != ast.StatementList {
		t.Fatalf("root.Children[0].Kind = %v, want StatementList", stmts.Kind)
	}
	if len(stmts.Children) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts.Children))
	}
	if stmts.Children[0].Kind != ast.Declaration || stmts.Children[0].Name != "n" {
		t.Errorf("statement 0 = %+v, want Declaration n", stmts.Children[0])
	}
	if stmts.Children[1].Kind != ast.Assignment || stmts.Children[1].Name != "n" {
		t.Errorf("statement 1 = %+v, want Assignment n", stmts.Children[1])
	}
	write := stmts.Children[2]
	if write.Kind != ast.WriteStatement {
		t.Fatalf("statement 2 = %+v, want WriteStatement", write)
	}
	outputs := write.Children[0]
	if outputs.Kind != ast.OutputList || len(outputs.Children) != 2 {
		t.Fatalf("write output list = %+v, want 2 elements", outputs)
	}
	if outputs.Children[1].Kind != ast.Newline {
		t.Errorf("second output element = %v, want Newline", outputs.Children[1].Kind)
	}
}

func TestParseLoopWithCodeBlockAndOptionalTrailingSemicolon(t *testing.T) {
	src := `number n; n := 3; repeat n times { write "hi" and newline; };`
	p, l := newParser(t, src)
	root, err := p.Parse(l)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	stmts := root.Children[0]
	loop := stmts.Children[2]
	if loop.Kind != ast.LoopStatement {
		t.Fatalf("statement 2 = %+v, want LoopStatement", loop)
	}
	body := loop.Children[1]
	if body.Kind != ast.CodeBlock {
		t.Fatalf("loop body = %v, want CodeBlock", body.Kind)
	}
}

func TestParseLoopWithSingleStatementBody(t *testing.T) {
	src := "number n; n := 3; repeat n times write newline;"
	p, l := newParser(t, src)
	root, err := p.Parse(l)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	stmts := root.Children[0]
	loop := stmts.Children[2]
	body := loop.Children[1]
	if body.Kind != ast.WriteStatement {
		t.Fatalf("loop body = %v, want WriteStatement", body.Kind)
	}
}

func TestParseSyntaxErrorReturnsPerrorError(t *testing.T) {
	p, l := newParser(t, "number ;")
	_, err := p.Parse(l)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	perr, ok := err.(*perror.Error)
	if !ok {
		t.Fatalf("error is %T, want *perror.Error", err)
	}
	if perr.Kind != perror.KindSyntaxError {
		t.Errorf("Kind = %v, want KindSyntaxError", perr.Kind)
	}
}

func TestParseLexicalErrorsPropagateTheirOwnKind(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want perror.Kind
	}{
		{"unknown character", "number n; n := 1 @ 2;", perror.KindUnknownCharacter},
		{"unterminated string", `write "hi;`, perror.KindUnterminatedString},
		{"bare colon", "number n; n : 1;", perror.KindInvalidOperator},
		{"bare dash", "number n; n := 1 - 1;", perror.KindInvalidOperator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, l := newParser(t, tc.src)
			_, err := p.Parse(l)
			if err == nil {
				t.Fatal("expected a lexical error")
			}
			perr, ok := err.(*perror.Error)
			if !ok {
				t.Fatalf("error is %T, want *perror.Error", err)
			}
			if perr.Kind != tc.want {
				t.Errorf("Kind = %v, want %v", perr.Kind, tc.want)
			}
		})
	}
}

func TestParseIncrementDecrement(t *testing.T) {
	src := "number n; n := 1; n += 2; n -= 1;"
	p, l := newParser(t, src)
	root, err := p.Parse(l)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	stmts := root.Children[0]
	if stmts.Children[2].Kind != ast.Increment {
		t.Errorf("statement 2 = %v, want Increment", stmts.Children[2].Kind)
	}
	if stmts.Children[3].Kind != ast.Decrement {
		t.Errorf("statement 3 = %v, want Decrement", stmts.Children[3].Kind)
	}
}
