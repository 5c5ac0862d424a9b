package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version, GitCommit and BuildDate are set by build flags (-ldflags);
	// left at their defaults for `go run`.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "plus",
	Short: "PLUS language interpreter",
	Long: `plus tokenizes, parses and evaluates programs written in PLUS, a
small imperative teaching language with arbitrary-precision signed
integers as its only numeric type.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
