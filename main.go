package main

import (
	"os"

	"github.com/emergentai/formdocs/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
