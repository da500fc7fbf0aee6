// Package main is the entry point for the fetchsim CLI.
//
// fetchsim simulates fetching a list of endpoints concurrently. Every fetch
// waits for a random delay and then succeeds or fails with a simulated
// network or server error; outcomes are collected and summarized.
//
// For detailed usage information, run:
//
//	fetchsim --help
package main

import (
	"context"
	"os"

	"github.com/agbru/fetchsim/internal/app"
)

// Version information set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app.SetVersionInfo(version, commit, date)
	os.Exit(app.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
