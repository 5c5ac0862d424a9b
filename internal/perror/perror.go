// Package perror formats the diagnostics every stage of the pipeline
// (lexer, BigInt conversion, grammar construction, parser, evaluator) can
// raise, following the teacher's CompilerError: source-context display
// with a caret pointing at the offending column (internal/errors/errors.go).
package perror

import (
	"fmt"
	"strings"

	"github.com/plus-lang/plus/internal/lexer"
)

// Kind closes the set of diagnostic categories spec §7 names: one per
// phase that can fail, never a catch-all.
type Kind int

const (
	// Lexical.
	KindUnknownCharacter Kind = iota
	KindUnterminatedString
	KindUnterminatedComment
	KindLexemeTooLong
	KindIntegerLiteralTooLong
	KindInvalidOperator

	// BigInt literal conversion.
	KindLiteralOverflow
	KindInvalidLiteral

	// Grammar/table construction.
	KindGrammarConflict

	// Parsing.
	KindSyntaxError

	// Runtime (evaluator).
	KindUndeclaredVariable
	KindRedeclaredVariable
	KindArithmeticOverflow
	KindNegativeLoopCount
)

var kindNames = [...]string{
	KindUnknownCharacter:      "UnknownCharacter",
	KindUnterminatedString:    "UnterminatedString",
	KindUnterminatedComment:   "UnterminatedComment",
	KindLexemeTooLong:         "LexemeTooLong",
	KindIntegerLiteralTooLong: "IntegerLiteralTooLong",
	KindInvalidOperator:       "InvalidOperator",
	KindLiteralOverflow:       "LiteralOverflow",
	KindInvalidLiteral:        "InvalidLiteral",
	KindGrammarConflict:       "GrammarConflict",
	KindSyntaxError:           "SyntaxError",
	KindUndeclaredVariable:    "UndeclaredVariable",
	KindRedeclaredVariable:    "RedeclaredVariable",
	KindArithmeticOverflow:    "ArithmeticOverflow",
	KindNegativeLoopCount:     "NegativeLoopCount",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Error is the one diagnostic shape every phase reports through: a kind,
// the source position it occurred at, a human-readable message, and
// (optionally) enough of the surrounding source to render a caret.
type Error struct {
	Kind    Kind
	Pos     lexer.Position
	Message string
	Source  string
	File    string
}

// New constructs an Error. source and file may be empty; Format degrades
// gracefully (no source line, no caret) when source is empty.
func New(kind Kind, pos lexer.Position, message, source, file string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

func (e *Error) Error() string { return e.Format(false) }

// Format renders the error with a source-line caret, following the
// teacher's CompilerError.Format: a header carrying the kind, the message
// and the position (prefixed with the file name when file is set), then the
// offending source line prefixed with its number, then a caret under the
// offending 0-based column. If color is true, ANSI codes highlight the
// caret.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s: %s at %s:%d:%d\n", e.Kind, e.Message, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s: %s at %d:%d\n", e.Kind, e.Message, e.Pos.Line, e.Pos.Column)
	}

	line := e.sourceLine(e.Pos.Line)
	if line == "" {
		return strings.TrimRight(sb.String(), "\n")
	}

	prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")

	col := e.Pos.Column
	if col < 0 {
		col = 0
	}
	sb.WriteString(strings.Repeat(" ", len(prefix)+col))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *Error) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
