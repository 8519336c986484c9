package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/wordladder/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}
