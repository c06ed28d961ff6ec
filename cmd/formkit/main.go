package main

import (
	"os"

	"github.com/crishoj/formkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
