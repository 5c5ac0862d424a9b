package cmd

import (
	"fmt"
	"strings"

	"github.com/plus-lang/plus/internal/ast"
	"github.com/plus-lang/plus/internal/lexer"
	"github.com/plus-lang/plus/internal/lr"
	"github.com/plus-lang/plus/internal/parser"
	"github.com/plus-lang/plus/internal/plusgrammar"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a PLUS program and display its AST",
	Long: `Parse PLUS source code and report whether it parses.

Use --dump-ast to print the full Abstract Syntax Tree instead of the
one-line summary.

Examples:
  plus parse program.plus
  plus parse -e "number x; x := 1; write x;"
  plus parse --dump-ast program.plus`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	g := plusgrammar.Build()
	s := lr.NewSets(g)
	coll := lr.BuildCollection(s)
	tables, conflicts := lr.BuildTables(s, coll)
	if len(conflicts) != 0 {
		return fmt.Errorf("grammar has %d unresolved conflict(s), refusing to parse", len(conflicts))
	}

	p := parser.New(g, tables, plusgrammar.ActionTable, input, filename)
	root, err := p.Parse(lexer.New(input, filename))
	if err != nil {
		printDiagnostic(err)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		dumpNode(root, 0)
		return nil
	}
	fmt.Printf("parse OK: %d top-level statement(s)\n", len(root.Children[0].Children))
	return nil
}

func dumpNode(n *ast.Node, indent int) {
	prefix := strings.Repeat("  ", indent)
	switch n.Kind {
	case ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", prefix, n.Name)
	case ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %s\n", prefix, n.Int.ToDecimalString())
	case ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", prefix, n.Text)
	case ast.Keyword:
		fmt.Printf("%sKeyword: %s\n", prefix, n.Text)
	case ast.Newline:
		fmt.Printf("%sNewline\n", prefix)
	case ast.Declaration, ast.Assignment, ast.Increment, ast.Decrement:
		fmt.Printf("%s%s: %s\n", prefix, n.Kind, n.Name)
		for _, c := range n.Children {
			dumpNode(c, indent+1)
		}
	default:
		fmt.Printf("%s%s (%d children)\n", prefix, n.Kind, len(n.Children))
		for _, c := range n.Children {
			dumpNode(c, indent+1)
		}
	}
}
