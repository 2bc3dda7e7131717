package main

import (
	"fmt"
	"os"

	"github.com/abhisek/yokai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "yokai:", err)
		os.Exit(1)
	}
}
