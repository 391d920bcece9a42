package main

import (
	"os"

	"github.com/dmgcanvas/dmgcanvas/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
