package main

import (
	"fmt"
	"os"

	"github.com/soyeahso/doagent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "doagent: %v\n", err)
		os.Exit(1)
	}
}
