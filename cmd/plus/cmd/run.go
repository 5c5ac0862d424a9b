package cmd

import (
	"fmt"
	"os"

	"github.com/plus-lang/plus/internal/eval"
	"github.com/plus-lang/plus/internal/lexer"
	"github.com/plus-lang/plus/internal/lr"
	"github.com/plus-lang/plus/internal/parser"
	"github.com/plus-lang/plus/internal/perror"
	"github.com/plus-lang/plus/internal/plusgrammar"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	trace    bool
	varDump  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a PLUS program",
	Long: `Execute a PLUS program from a file or inline expression.

Examples:
  # Run a script file
  plus run program.plus

  # Evaluate inline code
  plus run -e "number x; x := 1; write x;"

  # Trace every emitted token while lexing
  plus run --trace program.plus`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading from file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace every emitted token to stderr (debug only, not part of program output)")
	runCmd.Flags().BoolVar(&varDump, "var-dump", false, "print every declared variable's final value to stderr after a successful run")
}

func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	var lexOpts []lexer.Option
	if trace {
		lexOpts = append(lexOpts, lexer.WithTrace(os.Stderr))
	}
	l := lexer.New(input, filename, lexOpts...)

	g := plusgrammar.Build()
	s := lr.NewSets(g)
	coll := lr.BuildCollection(s)
	tables, conflicts := lr.BuildTables(s, coll)
	if len(conflicts) != 0 {
		return fmt.Errorf("grammar has %d unresolved conflict(s), refusing to run", len(conflicts))
	}

	p := parser.New(g, tables, plusgrammar.ActionTable, input, filename)
	root, err := p.Parse(l)
	if err != nil {
		printDiagnostic(err)
		return fmt.Errorf("parsing failed")
	}

	var evalOpts []eval.Option
	if varDump {
		evalOpts = append(evalOpts, eval.WithVarDump(os.Stderr))
	}
	if err := eval.RunWithSource(root, os.Stdout, input, filename, evalOpts...); err != nil {
		printDiagnostic(err)
		return fmt.Errorf("execution failed")
	}
	return nil
}

func printDiagnostic(err error) {
	if perr, ok := err.(*perror.Error); ok {
		fmt.Fprintln(os.Stderr, perr.Format(true))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
