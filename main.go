package main

import (
	"fmt"
	"os"

	"github.com/AsafMesi/practice/basictypes"
	"github.com/AsafMesi/practice/compound"
	"github.com/AsafMesi/practice/internal/catalog"
	"github.com/AsafMesi/practice/internal/logger"
	"github.com/AsafMesi/practice/internal/runner"
	"github.com/AsafMesi/practice/ownership"
	"github.com/AsafMesi/practice/variables"
)

// routines maps catalog names to example routines.
var routines = map[string]runner.Routine{
	"variables":      variables.Demo,
	"basic-types":    basictypes.Demo,
	"ownership":      ownership.Demo,
	"compound-types": compound.Demo,
}

// Runs the catalog's default example. Takes no flags and reads no
// environment; a failed check panics and exits non-zero.
//
// Run:
//
//	go run .
func main() {
	cat, err := catalog.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}
	level, _ := cat.Level() // validated by Load

	lggr, err := logger.New(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = lggr.Sync() }()

	r, err := runner.New(runner.Config{
		Catalog:  cat,
		Routines: routines,
		Out:      os.Stdout,
		Logger:   lggr,
	})
	if err != nil {
		lggr.Fatalw("invalid runner configuration", "err", err)
	}
	if err := r.RunDefault(); err != nil {
		lggr.Fatalw("run failed", "err", err)
	}
}
