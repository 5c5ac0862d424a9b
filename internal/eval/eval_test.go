package eval

import (
	"strings"
	"testing"

	"github.com/plus-lang/plus/internal/lexer"
	"github.com/plus-lang/plus/internal/lr"
	"github.com/plus-lang/plus/internal/parser"
	"github.com/plus-lang/plus/internal/perror"
	"github.com/plus-lang/plus/internal/plusgrammar"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	g := plusgrammar.Build()
	s := lr.NewSets(g)
	coll := lr.BuildCollection(s)
	tables, conflicts := lr.BuildTables(s, coll)
	if len(conflicts) != 0 {
		t.Fatalf("grammar has conflicts: %v", conflicts)
	}
	p := parser.New(g, tables, plusgrammar.ActionTable, src, "test.plus")
	root, err := p.Parse(lexer.New(src, "test.plus"))
	if err != nil {
		return "", err
	}
	var out strings.Builder
	err = RunWithSource(root, &out, src, "test.plus")
	return out.String(), err
}

func TestScenario1SimpleWrite(t *testing.T) {
	out, err := run(t, "number x; x := 7; write x;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7" {
		t.Errorf("got %q, want %q", out, "7")
	}
}

func TestScenario2IncrementAndNewline(t *testing.T) {
	out, err := run(t, "number x; x := 5; x += 3; write x and newline;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "8\n" {
		t.Errorf("got %q, want %q", out, "8\n")
	}
}

func TestScenario3LoopWithCodeBlock(t *testing.T) {
	out, err := run(t, `number n; n := 3; repeat n times { write "hi" and newline; };`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi\nhi\nhi\n" {
		t.Errorf("got %q, want %q", out, "hi\nhi\nhi\n")
	}
}

func TestScenario4NegativeDecrement(t *testing.T) {
	out, err := run(t, "number a; a := -2; a -= 3; write a;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "-5" {
		t.Errorf("got %q, want %q", out, "-5")
	}
}

func TestScenario5LargeLiteralRoundTrip(t *testing.T) {
	digits := strings.Repeat("7", 80)
	out, err := run(t, "number n; n := "+digits+"; write n;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != digits {
		t.Errorf("got %d-digit output, want the original 80-digit literal back", len(out))
	}
}

func TestScenario6UndeclaredIdentifier(t *testing.T) {
	_, err := run(t, "write x;")
	if err == nil {
		t.Fatal("expected an UndeclaredVariable error")
	}
	perr, ok := err.(*perror.Error)
	if !ok {
		t.Fatalf("error is %T, want *perror.Error", err)
	}
	if perr.Kind != perror.KindUndeclaredVariable {
		t.Errorf("Kind = %v, want KindUndeclaredVariable", perr.Kind)
	}
}

func TestRedeclarationIsRuntimeError(t *testing.T) {
	_, err := run(t, "number x; number x;")
	perr, ok := err.(*perror.Error)
	if !ok {
		t.Fatalf("error is %T, want *perror.Error", err)
	}
	if perr.Kind != perror.KindRedeclaredVariable {
		t.Errorf("Kind = %v, want KindRedeclaredVariable", perr.Kind)
	}
}

func TestZeroLoopCountSkipsBody(t *testing.T) {
	out, err := run(t, `number n; n := 0; repeat n times write "never";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("got %q, want empty output", out)
	}
}

func TestNegativeLoopCountIsRuntimeError(t *testing.T) {
	_, err := run(t, `number n; n := -1; repeat n times write "x";`)
	perr, ok := err.(*perror.Error)
	if !ok {
		t.Fatalf("error is %T, want *perror.Error", err)
	}
	if perr.Kind != perror.KindNegativeLoopCount {
		t.Errorf("Kind = %v, want KindNegativeLoopCount", perr.Kind)
	}
}

func TestWithVarDumpEmitsDeclarationOrderSnapshot(t *testing.T) {
	g := plusgrammar.Build()
	s := lr.NewSets(g)
	coll := lr.BuildCollection(s)
	tables, _ := lr.BuildTables(s, coll)
	src := "number b; number a; a := 1; b := 2;"
	p := parser.New(g, tables, plusgrammar.ActionTable, src, "test.plus")
	root, err := p.Parse(lexer.New(src, "test.plus"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out, dump strings.Builder
	if err := Run(root, &out, WithVarDump(&dump)); err != nil {
		t.Fatalf("eval error: %v", err)
	}
	want := "b = 2\na = 1\n"
	if dump.String() != want {
		t.Errorf("var dump = %q, want %q", dump.String(), want)
	}
}
