package main

import (
	"os"

	"github.com/AdansBatista/orca-sub010/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
