// Package main provides the tagconv CLI.
//
// tagconv converts tagged documents between serialization formats:
//   - restores the input with the builtin transformer registry
//   - dumps and encodes it again in the target format
//   - prints the restored Go values for inspection
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
