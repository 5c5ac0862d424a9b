package perror

import (
	"strings"
	"testing"

	"github.com/plus-lang/plus/internal/lexer"
)

func TestFormatWithoutSourceOmitsCaret(t *testing.T) {
	e := New(KindSyntaxError, lexer.Position{Line: 3, Column: 5}, "unexpected token", "", "")
	out := e.Format(false)
	if strings.Contains(out, "^") {
		t.Errorf("Format with empty Source must omit the caret, got:\n%s", out)
	}
	if !strings.Contains(out, "3:5") {
		t.Errorf("Format must include the position, got:\n%s", out)
	}
}

func TestFormatWithSourceRendersCaretUnderColumn(t *testing.T) {
	src := "number n;\nn := 1\n"
	e := New(KindSyntaxError, lexer.Position{Line: 2, Column: 7}, "expected ';'", src, "")
	out := e.Format(false)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d:\n%s", len(lines), out)
	}
	caretLine := lines[2]
	if !strings.HasSuffix(caretLine, "^") {
		t.Errorf("caret line %q does not end in '^'", caretLine)
	}
}

func TestFormatIncludesFileWhenSet(t *testing.T) {
	e := New(KindUndeclaredVariable, lexer.Position{Line: 1, Column: 1}, "n is not declared", "", "prog.plus")
	out := e.Format(false)
	if !strings.Contains(out, "prog.plus:1:1") {
		t.Errorf("expected file:line:col in output, got:\n%s", out)
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for k := KindUnknownCharacter; k <= KindNegativeLoopCount; k++ {
		if k.String() == "Unknown" {
			t.Errorf("Kind %d has no registered name", k)
		}
	}
}
