// Package variables demonstrates bindings: declaration, mutation, shadowing
// and destructuring.
package variables

import "github.com/AsafMesi/practice/internal/check"

// Demo runs every variables example in order.
func Demo(c *check.C) {
	demoBinding(c)
	demoMutation(c)
	demoShadowing(c)
	demoDestructuring(c)
}

// ── Binding ─────────────────────────────────────────────────────────────────
// Every variable has a zero value, so "declared but uninitialized" does not
// exist in Go. An unused local is a compile error; assign it to _ to keep it.

func demoBinding(c *check.C) {
	var x int32 = 5
	var y int32 // zero value: 0
	z := 7
	_ = z
	check.Equal(c, x, 5)
	check.Equal(c, y, 0)
	c.Printf("var x int32 = 5        → x=%d\n", x)
	c.Printf("var y int32            → y=%d (zero value)\n", y)
}

// ── Mutation ────────────────────────────────────────────────────────────────
// All variables are mutable. Immutability is a property of constants only.

func demoMutation(c *check.C) {
	x := int32(1)
	x += 2
	check.Equal(c, x, 3)
	c.Printf("x := 1; x += 2         → x=%d\n", x)
}

// ── Shadowing ───────────────────────────────────────────────────────────────
// := inside a block declares a new x; the outer x is untouched once the
// block ends.

func demoShadowing(c *check.C) {
	x := int32(5)
	{
		x := 12
		check.Equal(c, x, 12)
		c.Printf("inner block            → x=%d\n", x)
	}
	check.Equal(c, x, 5)
	c.Printf("after the block        → x=%d\n", x)
}

// ── Destructuring ───────────────────────────────────────────────────────────
// Multiple assignment binds several names at once. _ discards a position.

func demoDestructuring(c *check.C) {
	x, y := 1, 2
	x += 2
	check.Equal(c, x, 3)
	check.Equal(c, y, 2)
	c.Printf("x, y := 1, 2; x += 2   → x=%d y=%d\n", x, y)

	var a, b int
	a, _ = pair(3, 4)
	arr := [2]int{1, 2}
	b = arr[len(arr)-1]
	check.Equal(c, [2]int{a, b}, [2]int{3, 2})
	c.Printf("a, _ = (3, 4); b = last([1 2]) → [%d %d]\n", a, b)
}

func pair(a, b int) (int, int) { return a, b }
