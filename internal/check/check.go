// Package check holds the equality checks every example routine relies on.
//
// A failed check is fatal: by default it panics with a *Mismatch and nothing
// in the program recovers it, so the runtime prints the message and the
// process exits with a non-zero status.
package check

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/google/go-cmp/cmp"
)

// C is the context an example routine runs with: where diagnostics go and
// what happens when a check fails.
type C struct {
	out  io.Writer
	fail func(*Mismatch)
}

// New returns a C that writes to out and panics on the first mismatch.
// A nil out writes to os.Stdout.
func New(out io.Writer) *C {
	return NewWith(out, func(m *Mismatch) { panic(m) })
}

// NewWith returns a C with a custom failure hook. Tests use it to observe
// mismatches without unwinding.
func NewWith(out io.Writer, fail func(*Mismatch)) *C {
	if out == nil {
		out = os.Stdout
	}
	return &C{out: out, fail: fail}
}

// Printf writes a diagnostic line prefixed with two spaces, like every demo.
func (c *C) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, "  "+format, args...)
}

// Println writes a diagnostic line prefixed with two spaces. With no
// arguments it writes a blank line.
func (c *C) Println(args ...any) {
	if len(args) == 0 {
		fmt.Fprintln(c.out)
		return
	}
	fmt.Fprint(c.out, "  ")
	fmt.Fprintln(c.out, args...)
}

// Equal is assert_eq: left and right must be equal according to cmp.Equal.
// Unexported struct fields are compared too.
func Equal[T any](c *C, left, right T) {
	if cmp.Equal(left, right, cmp.Exporter(exportAll)) {
		return
	}
	c.fail(&Mismatch{
		Op:       "==",
		Left:     left,
		Right:    right,
		Location: caller(2),
		Diff:     cmp.Diff(left, right, cmp.Exporter(exportAll)),
	})
}

// NotEqual is assert_ne.
func NotEqual[T any](c *C, left, right T) {
	if !cmp.Equal(left, right, cmp.Exporter(exportAll)) {
		return
	}
	c.fail(&Mismatch{
		Op:       "!=",
		Left:     left,
		Right:    right,
		Location: caller(2),
	})
}

// True fails when cond is false. msg names the condition.
func True(c *C, cond bool, msg string) {
	if cond {
		return
	}
	c.fail(&Mismatch{
		Msg:      msg,
		Location: caller(2),
	})
}

func exportAll(reflect.Type) bool { return true }

// caller returns "file.go:line" for the frame skip levels above caller.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
