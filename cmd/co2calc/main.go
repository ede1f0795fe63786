package main

import (
	"os"

	"github.com/Simplici0/ammonia-co2/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
