package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/plus-lang/plus/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a PLUS file or expression",
	Long: `Tokenize a PLUS program and print the resulting tokens, for
debugging the lexer.

Examples:
  plus lex program.plus
  plus lex -e "number x;" --show-pos
  plus lex --show-type --show-pos program.plus
  plus lex --only-errors program.plus`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show each token's kind name")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only the illegal token, if any")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input, filename)
	tokenCount, errorCount := 0, 0
	for {
		tok := l.NextToken()
		if onlyErrors && tok.Kind != lexer.ILLEGAL {
			if tok.Kind == lexer.EOF {
				break
			}
			continue
		}
		tokenCount++
		if tok.Kind == lexer.ILLEGAL {
			errorCount++
		}
		printToken(tok)
		if tok.Kind == lexer.EOF || tok.Kind == lexer.ILLEGAL {
			break
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Kind)
	}
	switch {
	case tok.Kind == lexer.EOF:
		output += " EOF"
	case tok.Kind == lexer.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %s", tok.Lexeme)
	case tok.Lexeme == "":
		output += " " + tok.Kind.String()
	default:
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(strings.TrimPrefix(output, " "))
}
