package cmd

import (
	"fmt"

	"github.com/plus-lang/plus/internal/lr"
	"github.com/plus-lang/plus/internal/plusgrammar"
	"github.com/spf13/cobra"
)

var tablesStatesOnly bool

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build and summarize the PLUS grammar's LR(1) tables",
	Long: `Build the canonical LR(1) collection and ACTION/GOTO tables for the
shipped PLUS grammar, and report any conflicts. Exits non-zero if the
grammar is not conflict-free.`,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().BoolVar(&tablesStatesOnly, "states-only", false, "print only the state count, not the full ACTION/GOTO tables")
}

func runTables(_ *cobra.Command, _ []string) error {
	g := plusgrammar.Build()
	s := lr.NewSets(g)
	coll := lr.BuildCollection(s)
	tables, conflicts := lr.BuildTables(s, coll)

	fmt.Printf("states: %d\n", tables.NumStates)
	fmt.Printf("productions: %d\n", len(g.Productions))

	if !tablesStatesOnly {
		for state := 0; state < tables.NumStates; state++ {
			fmt.Printf("state %d:\n", state)
			for term := 0; term < g.NumTerminals; term++ {
				if a, ok := tables.ActionAt(state, term); ok {
					fmt.Printf("  on %-8s %s\n", g.SymbolName(term), a)
				}
			}
			for _, nt := range g.Nonterminals() {
				if target, ok := tables.GotoAt(state, nt); ok {
					fmt.Printf("  goto %-8s %d\n", g.SymbolName(nt), target)
				}
			}
		}
	}

	if len(conflicts) > 0 {
		fmt.Printf("\n%d conflict(s):\n", len(conflicts))
		for _, c := range conflicts {
			fmt.Println("  " + c.String())
		}
		return fmt.Errorf("grammar is not conflict-free")
	}
	return nil
}
