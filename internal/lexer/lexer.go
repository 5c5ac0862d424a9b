// Package lexer tokenizes PLUS source text into a finite token sequence
// ending in EOF (or an ILLEGAL token, after which the lexer halts).
//
// The lexer is table-driven: every byte is classified into one of a fixed
// closed set of character classes (classify below), and the finite-state
// machine that follows the classification decides how the current lexeme
// extends. This mirrors the teacher's switch-dispatched NextToken, made
// explicit here as a standalone classifier because the core specification
// calls the lexer "a character-classified finite-state machine".
package lexer

import (
	"fmt"
	"io"

	"github.com/plus-lang/plus/internal/bigint"
)

// charClass is the fixed closed set every input byte maps to.
type charClass int

const (
	classAlpha charClass = iota
	classDigit
	classPlus
	classColon
	classDash
	classQuote
	classStar
	classWhitespace
	classSemicolon
	classOpenBrace
	classCloseBrace
	classOpenParen
	classCloseParen
	classOther
	classEOF
)

func classify(b byte, eof bool) charClass {
	if eof {
		return classEOF
	}
	switch {
	case b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'):
		return classAlpha
	case b >= '0' && b <= '9':
		return classDigit
	case b == '+':
		return classPlus
	case b == ':':
		return classColon
	case b == '-':
		return classDash
	case b == '"':
		return classQuote
	case b == '*':
		return classStar
	case b == ' ' || b == '\t' || b == '\n' || b == '\r':
		return classWhitespace
	case b == ';':
		return classSemicolon
	case b == '{':
		return classOpenBrace
	case b == '}':
		return classCloseBrace
	case b == '(':
		return classOpenParen
	case b == ')':
		return classCloseParen
	default:
		return classOther
	}
}

// LexErrorKind enumerates the lexical error kinds from spec §7.
type LexErrorKind int

const (
	ErrUnknownCharacter LexErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedComment
	ErrLexemeTooLong
	ErrIntegerLiteralTooLong
	ErrInvalidOperator
)

func (k LexErrorKind) String() string {
	switch k {
	case ErrUnknownCharacter:
		return "UnknownCharacter"
	case ErrUnterminatedString:
		return "UnterminatedString"
	case ErrUnterminatedComment:
		return "UnterminatedComment"
	case ErrLexemeTooLong:
		return "LexemeTooLong"
	case ErrIntegerLiteralTooLong:
		return "IntegerLiteralTooLong"
	case ErrInvalidOperator:
		return "InvalidOperator"
	default:
		return "UnknownLexError"
	}
}

// LexError is the first, and only, lexical error a Lexer ever reports.
type LexError struct {
	Kind    LexErrorKind
	Pos     Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
}

const (
	maxLexemeBytes   = 256
	maxIntegerDigits = 100
)

// Option configures a Lexer at construction, following the teacher's
// functional-options pattern (LexerOption in internal/lexer/lexer.go).
type Option func(*Lexer)

// WithTrace writes one line per emitted token to w. This is the ad-hoc
// debug logging collaborator named out of scope by spec §1: it never
// participates in the observable stdout contract (spec §6).
func WithTrace(w io.Writer) Option {
	return func(l *Lexer) { l.trace = w }
}

// Lexer scans PLUS source text into tokens.
type Lexer struct {
	data   []byte
	source string
	syms   *SymbolTable

	i            int // index of the next unread byte
	line, col    int // position of data[i]
	histLine     int // one level of push-back history
	histCol      int

	halted bool
	err    *LexError
	trace  io.Writer
}

// New creates a Lexer over src, reporting positions against source (a file
// name or synthetic label such as "<eval>").
func New(src string, source string, opts ...Option) *Lexer {
	l := &Lexer{
		data:   []byte(src),
		source: source,
		syms:   NewSymbolTable(),
		line:   1,
		col:    0,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Symbols returns the lexer's symbol table.
func (l *Lexer) Symbols() *SymbolTable { return l.syms }

// Err returns the first unrecoverable lexical error, if any.
func (l *Lexer) Err() *LexError { return l.err }

func (l *Lexer) atEOF() bool { return l.i >= len(l.data) }

func (l *Lexer) peekByte() byte {
	if l.atEOF() {
		return 0
	}
	return l.data[l.i]
}

func (l *Lexer) peekByteAt(n int) byte {
	j := l.i + n
	if j >= len(l.data) {
		return 0
	}
	return l.data[j]
}

func (l *Lexer) here() Position {
	return Position{Line: l.line, Column: l.col, Source: l.source}
}

// consume returns data[i] and advances the cursor, updating line/col to
// describe the position of the byte that follows.
func (l *Lexer) consume() byte {
	b := l.data[l.i]
	l.i++
	l.histLine, l.histCol = l.line, l.col
	if b == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return b
}

// unread pushes back the single most recently consumed byte, restoring its
// column exactly; across a newline the line is decremented but the
// restored column is a documented limitation (spec §9, "Push-back column
// accounting") rather than a guaranteed exact value.
func (l *Lexer) unread() {
	l.i--
	l.line, l.col = l.histLine, l.histCol
}

func (l *Lexer) fail(kind LexErrorKind, pos Position, msg string) Token {
	l.err = &LexError{Kind: kind, Pos: pos, Message: msg}
	l.halted = true
	return Token{Kind: ILLEGAL, Pos: pos, Lexeme: msg}
}

// NextToken returns the next token in the stream. Once an ILLEGAL token has
// been produced, every subsequent call returns the same token: there is no
// local recovery (spec §4.2).
func (l *Lexer) NextToken() Token {
	if l.halted {
		return Token{Kind: ILLEGAL, Pos: l.err.Pos, Lexeme: l.err.Message}
	}
	tok := l.scan()
	if l.trace != nil {
		fmt.Fprintf(l.trace, "%-8s %-12q @%d:%d\n", tok.Kind, tok.Lexeme, tok.Pos.Line, tok.Pos.Column)
	}
	return tok
}

func (l *Lexer) scan() Token {
	for {
		b := l.peekByte()
		class := classify(b, l.atEOF())

		switch class {
		case classEOF:
			return Token{Kind: EOF, Pos: l.here()}

		case classWhitespace:
			l.consume()
			continue

		case classStar:
			if l.peekByteAt(1) == '*' {
				if !l.skipComment() {
					return Token{Kind: ILLEGAL, Pos: l.err.Pos, Lexeme: l.err.Message}
				}
				continue
			}
			pos := l.here()
			l.consume()
			return Token{Kind: STAR, Pos: pos, Lexeme: "*"}

		case classAlpha:
			return l.scanIdentifier()

		case classDigit:
			return l.scanInteger(l.here(), false)

		case classPlus:
			pos := l.here()
			l.consume()
			if l.peekByte() == '=' {
				l.consume()
				return Token{Kind: PLUSEQ, Pos: pos, Lexeme: "+="}
			}
			return Token{Kind: PLUS, Pos: pos, Lexeme: "+"}

		case classColon:
			pos := l.here()
			l.consume()
			if l.peekByte() == '=' {
				l.consume()
				return Token{Kind: ASSIGN, Pos: pos, Lexeme: ":="}
			}
			return l.fail(ErrInvalidOperator, pos, "bare ':' is not a valid operator")

		case classDash:
			pos := l.here()
			l.consume()
			switch {
			case l.peekByte() == '=':
				l.consume()
				return Token{Kind: MINUSEQ, Pos: pos, Lexeme: "-="}
			case classify(l.peekByte(), l.atEOF()) == classDigit:
				return l.scanInteger(pos, true)
			default:
				return l.fail(ErrInvalidOperator, pos, "bare '-' is not a valid operator")
			}

		case classQuote:
			return l.scanString()

		case classSemicolon:
			pos := l.here()
			l.consume()
			return Token{Kind: SEMI, Pos: pos, Lexeme: ";"}

		case classOpenBrace:
			pos := l.here()
			l.consume()
			return Token{Kind: LBRACE, Pos: pos, Lexeme: "{"}

		case classCloseBrace:
			pos := l.here()
			l.consume()
			return Token{Kind: RBRACE, Pos: pos, Lexeme: "}"}

		case classOpenParen:
			pos := l.here()
			l.consume()
			return Token{Kind: LPAREN, Pos: pos, Lexeme: "("}

		case classCloseParen:
			pos := l.here()
			l.consume()
			return Token{Kind: RPAREN, Pos: pos, Lexeme: ")"}

		default:
			pos := l.here()
			l.consume()
			return l.fail(ErrUnknownCharacter, pos, fmt.Sprintf("unexpected character %q", b))
		}
	}
}

// skipComment consumes a "** ... **" comment, having already confirmed the
// opening "**" is present but not yet consumed it. Returns false on
// UnterminatedComment.
func (l *Lexer) skipComment() bool {
	openPos := l.here()
	l.consume() // first '*'
	l.consume() // second '*'
	for {
		if l.atEOF() {
			l.fail(ErrUnterminatedComment, openPos, "unterminated comment")
			return false
		}
		if l.peekByte() == '*' && l.peekByteAt(1) == '*' {
			l.consume()
			l.consume()
			return true
		}
		l.consume()
	}
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.here()
	var buf []byte
	for {
		b := l.peekByte()
		c := classify(b, l.atEOF())
		if c != classAlpha && c != classDigit {
			break
		}
		if len(buf) >= maxLexemeBytes {
			return l.fail(ErrLexemeTooLong, pos, "identifier exceeds maximum length")
		}
		buf = append(buf, l.consume())
	}
	name := string(buf)
	idx, entry := l.syms.Intern(name)
	return Token{Kind: entry.Kind, Lexeme: name, Pos: pos, SymbolIndex: idx}
}

// scanInteger scans a decimal integer literal. If negative is true the
// caller has already consumed a leading '-' that is part of the lexeme.
func (l *Lexer) scanInteger(pos Position, negative bool) Token {
	var buf []byte
	if negative {
		buf = append(buf, '-')
	}
	digits := 0
	for {
		c := classify(l.peekByte(), l.atEOF())
		if c != classDigit {
			break
		}
		digits++
		if digits > maxIntegerDigits {
			return l.fail(ErrIntegerLiteralTooLong, pos, "integer literal exceeds maximum length")
		}
		if len(buf) >= maxLexemeBytes {
			return l.fail(ErrLexemeTooLong, pos, "integer literal exceeds maximum length")
		}
		buf = append(buf, l.consume())
	}
	lexeme := string(buf)
	v, err := bigint.FromDecimalString(lexeme)
	if err != nil {
		return l.fail(ErrIntegerLiteralTooLong, pos, "integer literal out of range")
	}
	return Token{Kind: INT, Lexeme: lexeme, Pos: pos, IntValue: v}
}

func (l *Lexer) scanString() Token {
	pos := l.here()
	var buf []byte
	buf = append(buf, l.consume()) // opening quote
	for {
		if l.atEOF() {
			return l.fail(ErrUnterminatedString, pos, "unterminated string literal")
		}
		b := l.peekByte()
		if b == '"' {
			buf = append(buf, l.consume())
			break
		}
		if len(buf) >= maxLexemeBytes {
			return l.fail(ErrLexemeTooLong, pos, "string literal exceeds maximum length")
		}
		buf = append(buf, l.consume())
	}
	return Token{Kind: STRING, Lexeme: string(buf), Pos: pos}
}
