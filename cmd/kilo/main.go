package main

import (
	"os"

	"github.com/syamimhazmi/kilo-editor/cmd/kilo/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
