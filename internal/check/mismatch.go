package check

import (
	"fmt"
	"strings"
)

// Mismatch describes a failed check: the operator, both operands and the
// source location of the call. Checks on a bare condition set Msg instead
// of the operands.
type Mismatch struct {
	Msg      string
	Op       string
	Left     any
	Right    any
	Location string
	Diff     string // cmp.Diff output, set only for == checks
}

func (m *Mismatch) Error() string {
	if m.Msg != "" {
		return fmt.Sprintf("assertion failed at %s: %s", m.Location, m.Msg)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "assertion `left %s right` failed at %s\n", m.Op, m.Location)
	fmt.Fprintf(&sb, "  left: %#v\n", m.Left)
	fmt.Fprintf(&sb, " right: %#v", m.Right)
	if m.Diff != "" {
		fmt.Fprintf(&sb, "\n  diff (-left +right):\n%s", m.Diff)
	}
	return sb.String()
}
