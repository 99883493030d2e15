package main

import (
	"os"

	"github.com/thalesmenezes286/consumo-energia-pc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
