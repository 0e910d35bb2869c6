package main

import (
	"fmt"
	"os"

	"github.com/comalice/tickerx/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
