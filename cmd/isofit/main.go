package main

import (
	"os"

	"github.com/arloliu/isofit/cmd/isofit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
