package main

import (
	"os"

	"github.com/Whilreal0/Klima-Pro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
