// Package main provides the gelu command-line tool.
//
// Usage:
//
//	gelu forward --approximate tanh -- -1 0 1
//	gelu backward --grad 2 1.5
//	gelu ops
//	gelu version
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
