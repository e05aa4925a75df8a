package main

import (
	"os"

	"github.com/solatis/fieldgate/cmd/fieldgate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
