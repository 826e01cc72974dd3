package main

import (
	"os"

	"github.com/ZanzyTHEbar/subword-bpe/cmd/bpe/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
