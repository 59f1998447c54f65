package main

import (
	"fmt"
	"os"

	"todo-app/internal/cli"
)

func main() {
	root := cli.NewRootCommand(cli.DefaultAPIFactory, os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
