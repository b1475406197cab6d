package main

import (
	"fmt"
	"os"

	"github.com/spec-kit/portfolio-site/cmd/contact/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
