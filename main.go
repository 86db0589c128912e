package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/netmap/netmap/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
