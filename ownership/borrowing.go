package ownership

import (
	"fmt"

	"github.com/AsafMesi/practice/internal/check"
)

// boxed returns a pointer to a fresh copy of v. The value escapes to the
// heap; the compiler decides that, not the caller.
func boxed[T any](v T) *T {
	return &v
}

type person struct {
	name string
	age  *uint8
}

// appendWorld mutates the caller's string through a pointer.
func appendWorld(s *string) {
	*s += ", world"
}

// addr formats a pointer the way %p does.
func addr[T any](p *T) string {
	return fmt.Sprintf("%p", p)
}

func demoReferences(c *check.C) {
	// ── Boxes ────────────────────────────────────────────────────────────────
	x := boxed[int32](5)
	y := boxed[int32](1)
	*y = 5
	check.Equal(c, *x, *y)
	check.True(c, x != y, "two boxes are two allocations")

	// ── Partial copies ───────────────────────────────────────────────────────
	// name is copied out; age is a pointer, so both copies share it.
	p := person{name: "Alice", age: boxed[uint8](20)}
	name, age := p.name, p.age
	check.Equal(c, *age, *p.age)
	check.True(c, age == p.age, "age is shared, not copied")
	check.Equal(c, name, "Alice")
	*age = 21
	check.Equal(c, *p.age, 21)
	c.Printf("person.age after *age = 21: %d\n", *p.age)

	// ── Mutation through a pointer parameter ─────────────────────────────────
	s := "hello"
	appendWorld(&s)
	check.Equal(c, s, "hello, world")

	// ── Pointers to locals ───────────────────────────────────────────────────
	v := int32(5)
	pv := &v
	check.Equal(c, *pv, 5)

	t := "hello"
	pt := &t
	*pt += ", world"
	check.Equal(c, t, "hello, world")

	// ── Address identity ─────────────────────────────────────────────────────
	heart := '❤'
	r1 := &heart
	r2 := &heart
	check.Equal(c, *r1, *r2)
	check.Equal(c, addr(r1), addr(r2))
	c.Printf("r1=%s r2=%s\n", addr(r1), addr(r2))
}
