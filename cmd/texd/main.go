// Package main is the entry point for the texd daemon.
package main

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/texd/cmd/texd/commands"
)

func main() {
	cli := commands.New()
	if err := cli.Execute(context.Background()); err != nil {
		// zerr prints a report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
