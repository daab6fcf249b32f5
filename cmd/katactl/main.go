// Command katactl exercises the glossary, totalizer and character picker
// locally, without starting the HTTP server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
