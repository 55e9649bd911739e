// Package main is the entry point for the mdchunk CLI.
package main

import (
	"log/slog"
	"os"
)

func main() {
	// Records go to stdout; diagnostics stay on stderr.
	log = slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
