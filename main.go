package main

import (
	"os"

	"github.com/mholden/chatex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
