package main

import (
	"os"

	"github.com/abhisek/careaid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
