// Package compound demonstrates strings, arrays and slices.
package compound

import "github.com/AsafMesi/practice/internal/check"

// Demo runs every compound-types example in order.
func Demo(c *check.C) {
	c.Println("string:")
	demoStrings(c)

	c.Println()
	c.Println("array:")
	demoArrays(c)

	c.Println()
	c.Println("slice:")
	demoSlices(c)
}
