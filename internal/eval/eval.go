// Package eval is the tree-walking evaluator spec §4.8 names as an
// external collaborator: it walks the AST internal/parser produces,
// performs arithmetic with internal/bigint, and writes observable output.
// It is deliberately outside the specification's core (§1), but a complete
// interpreter needs one, so it is built here in the teacher's plain,
// switch-on-kind tree-walker style rather than left unimplemented.
package eval

import (
	"fmt"
	"io"

	"github.com/plus-lang/plus/internal/ast"
	"github.com/plus-lang/plus/internal/bigint"
	"github.com/plus-lang/plus/internal/lexer"
	"github.com/plus-lang/plus/internal/perror"
)

// Option configures a run, following the lexer's functional-options
// pattern (internal/lexer.Option).
type Option func(*evaluator)

// WithVarDump writes a snapshot of every declared variable, in declaration
// order, to w after the program finishes successfully. This supplements
// the core's observable-output contract (spec §6 names stdout as the
// program-output channel only); it is off by default and never runs
// before a runtime error aborts evaluation, matching original_source's
// debug variable dump which likewise only fires after a clean run.
func WithVarDump(w io.Writer) Option {
	return func(e *evaluator) { e.varDump = w }
}

type evaluator struct {
	env     *Environment
	out     io.Writer
	varDump io.Writer
	source  string
	file    string
}

// Run walks root (a Program node) and writes its program output to out.
// root must be the node internal/parser.Parse returns on success.
func Run(root *ast.Node, out io.Writer, opts ...Option) error {
	return RunWithSource(root, out, "", "", opts...)
}

// RunWithSource is Run plus source/file, used to render perror.Error
// diagnostics with a caret for runtime errors.
func RunWithSource(root *ast.Node, out io.Writer, source, file string, opts ...Option) error {
	e := &evaluator{env: NewEnvironment(), out: out, source: source, file: file}
	for _, opt := range opts {
		opt(e)
	}
	if root.Kind != ast.Program {
		return fmt.Errorf("eval: root is %v, not Program", root.Kind)
	}
	if err := e.execStatementList(root.Children[0]); err != nil {
		return err
	}
	if e.varDump != nil {
		for _, name := range e.env.Names() {
			v, _ := e.env.Get(name)
			fmt.Fprintf(e.varDump, "%s = %s\n", name, v.ToDecimalString())
		}
	}
	return nil
}

func (e *evaluator) execStatementList(list *ast.Node) error {
	for _, stmt := range list.Children {
		if err := e.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *evaluator) execStatement(n *ast.Node) error {
	switch n.Kind {
	case ast.Declaration:
		if err := e.env.Declare(n.Name); err != nil {
			return e.runtimeError(perror.KindRedeclaredVariable, n.Pos, err.Error())
		}
		return nil

	case ast.Assignment:
		v, err := e.evalIntValue(n.Children[0])
		if err != nil {
			return err
		}
		if _, err := e.env.Get(n.Name); err != nil {
			return e.runtimeError(perror.KindUndeclaredVariable, n.Pos, err.Error())
		}
		e.env.Set(n.Name, v)
		return nil

	case ast.Increment:
		return e.applyDelta(n, bigint.SignedAdd)

	case ast.Decrement:
		return e.applyDelta(n, bigint.SignedSub)

	case ast.WriteStatement:
		return e.execWrite(n)

	case ast.LoopStatement:
		return e.execLoop(n)

	case ast.CodeBlock:
		return e.execStatementList(n.Children[0])

	default:
		return fmt.Errorf("eval: unexpected statement kind %v", n.Kind)
	}
}

func (e *evaluator) applyDelta(n *ast.Node, combine func(a, b bigint.Int) (bigint.Int, error)) error {
	delta, err := e.evalIntValue(n.Children[0])
	if err != nil {
		return err
	}
	current, err := e.env.Get(n.Name)
	if err != nil {
		return e.runtimeError(perror.KindUndeclaredVariable, n.Pos, err.Error())
	}
	next, err := combine(current, delta)
	if err != nil {
		return e.runtimeError(perror.KindArithmeticOverflow, n.Pos, err.Error())
	}
	e.env.Set(n.Name, next)
	return nil
}

func (e *evaluator) execWrite(n *ast.Node) error {
	outputs := n.Children[0]
	for _, el := range outputs.Children {
		switch el.Kind {
		case ast.IntValue:
			v, err := e.evalIntValue(el)
			if err != nil {
				return err
			}
			fmt.Fprint(e.out, v.ToDecimalString())
		case ast.StringLiteral:
			fmt.Fprint(e.out, el.Text)
		case ast.Newline:
			fmt.Fprint(e.out, "\n")
		default:
			return fmt.Errorf("eval: unexpected output-list element kind %v", el.Kind)
		}
	}
	return nil
}

func (e *evaluator) execLoop(n *ast.Node) error {
	countNode, body := n.Children[0], n.Children[1]
	count, err := e.evalIntValue(countNode)
	if err != nil {
		return err
	}
	if count.SignOf() == bigint.Negative {
		return e.runtimeError(perror.KindNegativeLoopCount, n.Pos, "negative loop count")
	}
	one := bigint.FromNative(1)
	for !count.IsZero() {
		if err := e.execStatement(body); err != nil {
			return err
		}
		count, err = bigint.SignedSub(count, one)
		if err != nil {
			return e.runtimeError(perror.KindArithmeticOverflow, n.Pos, err.Error())
		}
	}
	return nil
}

func (e *evaluator) evalIntValue(n *ast.Node) (bigint.Int, error) {
	child := n.Children[0]
	switch child.Kind {
	case ast.IntegerLiteral:
		return child.Int, nil
	case ast.Identifier:
		v, err := e.env.Get(child.Name)
		if err != nil {
			return bigint.Int{}, e.runtimeError(perror.KindUndeclaredVariable, child.Pos, err.Error())
		}
		return v, nil
	default:
		return bigint.Int{}, fmt.Errorf("eval: unexpected IntValue child kind %v", child.Kind)
	}
}

func (e *evaluator) runtimeError(kind perror.Kind, pos lexer.Position, msg string) error {
	return perror.New(kind, pos, msg, e.source, e.file)
}
