package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain prunes obsolete snapshots once the package's tests finish,
// mirroring the fixture suite's use of go-snaps.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// scriptCases drives every subcommand against a handful of representative
// PLUS programs. wantRun is the exact stdout runScript must produce on
// success; wantRunContains is an error-message substring to require instead
// when the program is expected to fail at runtime (the error text is
// ANSI-colored and position-dependent, so it is checked by substring rather
// than pinned byte-for-byte). wantStatements is the top-level statement
// count runParse's non-dump summary must report.
var scriptCases = []struct {
	name            string
	src             string
	wantRun         string
	wantRunContains string
	wantStatements  int
}{
	{name: "declare_assign_write", src: `number x; x := 41; x += 1; write x and newline;`, wantRun: "42\n", wantStatements: 4},
	{name: "loop_code_block", src: `number n; n := 3; number total; total := 0; repeat n times { total += 1; }; write total and newline;`, wantRun: "3\n", wantStatements: 6},
	{name: "loop_single_statement", src: `number n; n := 5; number total; total := 0; repeat n times total += 1; write total and newline;`, wantRun: "5\n", wantStatements: 6},
	{name: "undeclared_identifier", src: `write y and newline;`, wantRunContains: "UndeclaredVariable", wantStatements: 1},
	{name: "negative_loop_count", src: `number n; n := 0; n -= 1; repeat n times write 1;`, wantRunContains: "NegativeLoopCount", wantStatements: 4},
}

// captureOutput redirects stdout and stderr to a buffer for the duration of
// fn, restoring the originals afterward. Subcommands never run concurrently
// in this package's tests, so the swap is safe without extra locking.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to open pipe: %v", err)
	}
	os.Stdout, os.Stderr = w, w

	runErr := fn()

	w.Close()
	os.Stdout, os.Stderr = origOut, origErr

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), runErr
}

// TestRunCommandOutput checks runScript against known-good output for
// successful programs, and against the distinct perror.Kind name for
// programs expected to fail, rather than snapshotting either — the error
// path renders ANSI escapes and source positions that aren't worth
// hand-verifying byte-for-byte.
func TestRunCommandOutput(t *testing.T) {
	for _, tc := range scriptCases {
		t.Run(tc.name, func(t *testing.T) {
			evalExpr, trace, varDump = tc.src, false, false
			out, err := captureOutput(t, func() error {
				return runScript(runCmd, nil)
			})
			if tc.wantRunContains != "" {
				if err == nil {
					t.Fatalf("expected runScript to fail, output:\n%s", out)
				}
				if !strings.Contains(out, tc.wantRunContains) {
					t.Errorf("output = %q, want substring %q", out, tc.wantRunContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("runScript failed: %v, output:\n%s", err, out)
			}
			if out != tc.wantRun {
				t.Errorf("output = %q, want %q", out, tc.wantRun)
			}
		})
	}
}

// TestParseCommandOutput checks runParse's default (non-dump-ast) summary
// line against the statement count each case is known to parse into. Every
// case here parses successfully: a parse failure would point at a grammar
// regression, not at the runtime-error paths TestRunCommandOutput covers.
func TestParseCommandOutput(t *testing.T) {
	for _, tc := range scriptCases {
		t.Run(tc.name, func(t *testing.T) {
			evalExpr, parseDumpAST = tc.src, false
			out, err := captureOutput(t, func() error {
				return runParse(parseCmd, nil)
			})
			if err != nil {
				t.Fatalf("runParse failed: %v, output:\n%s", err, out)
			}
			want := fmt.Sprintf("parse OK: %d top-level statement(s)\n", tc.wantStatements)
			if out != want {
				t.Errorf("output = %q, want %q", out, want)
			}
		})
	}
}

func TestParseCommandDumpAST(t *testing.T) {
	evalExpr, parseDumpAST = scriptCases[0].src, true
	out, err := captureOutput(t, func() error {
		return runParse(parseCmd, nil)
	})
	if err != nil {
		t.Fatalf("runParse failed: %v", err)
	}
	if !strings.Contains(out, "Declaration: x") {
		t.Errorf("dump-ast output missing expected node, got:\n%s", out)
	}
}

// TestLexCommandOutput checks that every case lexes cleanly end to end, with
// no ILLEGAL token, now that scriptCases only uses valid PLUS syntax. It
// asserts on the lex command's exit behavior and the absence of an illegal
// token rather than pinning the full token dump, since the dump's exact text
// depends on every keyword and identifier lexeme the case happens to use.
func TestLexCommandOutput(t *testing.T) {
	for _, tc := range scriptCases {
		t.Run(tc.name, func(t *testing.T) {
			evalExpr, showPos, showType, onlyErrors = tc.src, false, true, false
			out, err := captureOutput(t, func() error {
				return lexScript(lexCmd, nil)
			})
			if err != nil {
				t.Fatalf("lexScript reported an illegal token for valid source: %v, output:\n%s", err, out)
			}
			if strings.Contains(out, "ILLEGAL") {
				t.Errorf("output unexpectedly contains an ILLEGAL token:\n%s", out)
			}
			if !strings.Contains(out, "EOF") {
				t.Errorf("output missing trailing EOF token:\n%s", out)
			}
		})
	}
}

func TestTablesCommandOutput(t *testing.T) {
	tablesStatesOnly = true
	out, err := captureOutput(t, func() error {
		return runTables(tablesCmd, nil)
	})
	if err != nil {
		t.Fatalf("runTables failed: %v", err)
	}
	snaps.MatchSnapshot(t, "tables_states_only", out)
}
