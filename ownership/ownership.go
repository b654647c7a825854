// Package ownership shows what becomes of ownership and borrowing in Go:
// assignment copies values, pointers share them, and the garbage collector
// decides lifetimes. There is no move; there are only copies of values and
// copies of pointers.
package ownership

import "github.com/AsafMesi/practice/internal/check"

// Demo runs every ownership example in order.
func Demo(c *check.C) {
	demoCopies(c)
	demoReferences(c)
}

// ── Copies ──────────────────────────────────────────────────────────────────

// record mixes a few field kinds; all of them are copied on assignment.
type record struct {
	a, b int32
	unit struct{}
	s    string
}

func demoCopies(c *check.C) {
	// Strings are immutable, so "cloning" one and sharing one look the same.
	x := "hello"
	y := x
	check.Equal(c, x, y)

	// []byte(s) copies the bytes; the string is untouched by later writes.
	s := "hello"
	b := []byte(s)
	check.Equal(c, b, []byte{104, 101, 108, 108, 111})
	b[0] = 'j'
	check.Equal(c, s, "hello")
	c.Printf("[]byte(%q) = %v after b[0]='j'\n", s, b)

	// Struct assignment copies every field.
	r1 := record{a: 1, b: 2, s: "hello"}
	r2 := r1
	check.Equal(c, r1, r2)
	r2.a = 10
	check.Equal(c, r1.a, 1)
	c.Printf("r1=%+v r2=%+v\n", r1, r2)

	// The new variable is as mutable as the old one.
	first := "hello "
	second := first
	second += "world"
	check.Equal(c, second, "hello world")
	check.Equal(c, first, "hello ")
}
