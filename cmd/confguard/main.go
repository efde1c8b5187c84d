package main

import (
	"os"

	"github.com/confguard/confguard/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
