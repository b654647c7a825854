package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsafMesi/practice/internal/catalog"
	"github.com/AsafMesi/practice/internal/check"
	"github.com/AsafMesi/practice/internal/runner"
)

// Every catalog entry has a routine and every routine runs clean.
func TestEveryExampleRuns(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	assert.Len(t, routines, len(cat.Examples))

	var out bytes.Buffer
	r, err := runner.New(runner.Config{Catalog: cat, Routines: routines, Out: &out})
	require.NoError(t, err)

	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { require.NoError(t, r.Run(name)) })
		})
	}
	require.NoError(t, r.RunDefault())
	assert.Contains(t, out.String(), "━━━ Compound types — strings, arrays, slices ━━━")
}

// crashEnv makes the test binary run a failing example instead of the tests.
// Only the test harness sets it; main never reads the environment.
const crashEnv = "PRACTICE_FAILING_EXAMPLE"

// A failed check must take the whole process down with a non-zero status.
func TestFailedCheckExitsNonZero(t *testing.T) {
	if os.Getenv(crashEnv) == "1" {
		cat, err := catalog.Parse([]byte("default: broken\nexamples:\n  - name: broken\n    title: Broken\n"))
		if err != nil {
			os.Exit(0) // the parent reports the missing failure
		}
		r, err := runner.New(runner.Config{
			Catalog: cat,
			Routines: map[string]runner.Routine{
				"broken": func(c *check.C) { check.Equal(c, 0b0011&0b0101, 0b0010) },
			},
			Out: os.Stdout,
		})
		if err != nil {
			os.Exit(0)
		}
		_ = r.RunDefault()
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFailedCheckExitsNonZero$")
	cmd.Env = append(os.Environ(), crashEnv+"=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit, got err=%v output:\n%s", err, out)
	assert.NotZero(t, exitErr.ExitCode())
	assert.Contains(t, string(out), "━━━ Broken ━━━")
	assert.Contains(t, string(out), "assertion `left == right` failed at main_test.go:")
	assert.Contains(t, string(out), "left: 1")
	assert.Contains(t, string(out), "right: 2")
}
