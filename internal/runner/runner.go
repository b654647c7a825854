// Package runner runs one example routine from the catalog to completion.
//
// There is no retry and no partial failure: a routine either finishes or a
// check inside it panics and takes the process down.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AsafMesi/practice/internal/catalog"
	"github.com/AsafMesi/practice/internal/check"
	"github.com/AsafMesi/practice/internal/logger"
)

var (
	ErrUnknownExample = errors.New("unknown example")
	ErrMissingRoutine = errors.New("catalog entry has no routine")
)

// Routine is one example: a linear sequence of bindings and checks.
type Routine func(c *check.C)

// Config holds everything a Runner needs.
type Config struct {
	Catalog  *catalog.Catalog
	Routines map[string]Routine
	Out      io.Writer     // default os.Stdout
	Logger   logger.Logger // default logger.Nop()
	// NewCheck builds the check context for each run; default check.New.
	NewCheck func(out io.Writer) *check.C
}

// Runner resolves example names to routines and runs them.
type Runner struct {
	cfg  Config
	lggr logger.Logger
}

// New validates cfg and returns a Runner. Every catalog entry must have a
// routine.
func New(cfg Config) (*Runner, error) {
	if cfg.Catalog == nil {
		return nil, catalog.ErrEmptyCatalog
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.NewCheck == nil {
		cfg.NewCheck = check.New
	}
	for _, name := range cfg.Catalog.Names() {
		if cfg.Routines[name] == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingRoutine, name)
		}
	}
	return &Runner{cfg: cfg, lggr: cfg.Logger.Named("runner")}, nil
}

// Names lists runnable examples in catalog order.
func (r *Runner) Names() []string {
	return r.cfg.Catalog.Names()
}

// RunDefault runs the catalog's default example.
func (r *Runner) RunDefault() error {
	return r.Run(r.cfg.Catalog.Default)
}

// Run runs the named example once.
func (r *Runner) Run(name string) error {
	entry, ok := r.cfg.Catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}
	routine := r.cfg.Routines[name]

	r.lggr.Debugw("example started", "example", name, "topics", entry.Topics)
	section(r.cfg.Out, entry.Title)
	routine(r.cfg.NewCheck(r.cfg.Out))
	for _, link := range entry.Links {
		fmt.Fprintf(r.cfg.Out, "\n  more: %s\n", link)
	}
	r.lggr.Infow("example finished", "example", name)
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
