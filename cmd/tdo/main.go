package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fail(describe(err))
		os.Exit(1)
	}
}
