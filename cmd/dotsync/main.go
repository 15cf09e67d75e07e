package main

import (
	"fmt"
	"os"

	"github.com/harrison/dotsync/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Aborting!\n", err)
		os.Exit(1)
	}
}
