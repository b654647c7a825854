// Package basictypes demonstrates numbers, runes, booleans, the empty struct,
// expression-valued blocks and function signatures.
package basictypes

import "github.com/AsafMesi/practice/internal/check"

// Demo runs every basic-types example in order.
func Demo(c *check.C) {
	c.Println("numbers:")
	demoNumbers(c)

	c.Println()
	c.Println("rune, bool and unit:")
	demoRuneBoolUnit(c)

	c.Println()
	c.Println("statements and expressions:")
	demoExpressions(c)

	c.Println()
	c.Println("functions:")
	demoFunctions(c)
}
