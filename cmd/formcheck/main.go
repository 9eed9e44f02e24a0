// Command formcheck validates values against a YAML or JSON form definition.
//
//	formcheck validate signup.yaml --values input.json
//	formcheck errors signup.yaml --flat
//	formcheck values signup.yaml --mark touched
//	formcheck flatten signup.yaml --sep .
//
// Settings are read from FORMCHECK_* environment variables and an optional
// .env file; flags take precedence.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errInvalidForm) {
			return exitInvalid
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitError
	}
	return exitOK
}
