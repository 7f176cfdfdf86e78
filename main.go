package main

import (
	"fmt"
	"os"
)

// Set with -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "inkqr:", err)
		os.Exit(1)
	}
}
