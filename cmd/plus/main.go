package main

import (
	"fmt"
	"os"

	"github.com/plus-lang/plus/cmd/plus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
