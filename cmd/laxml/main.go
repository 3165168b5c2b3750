package main

import (
	"fmt"
	"os"

	"github.com/anglebracket/laxml/commands"
)

func main() {
	if err := commands.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
