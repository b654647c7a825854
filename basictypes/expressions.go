package basictypes

import "github.com/AsafMesi/practice/internal/check"

// Go blocks are statements, not expressions. A value-producing block is
// written as a function literal called on the spot.

func demoExpressions(c *check.C) {
	x := uint32(5)
	y := func() uint32 {
		xSquared := x * x
		xCubed := xSquared * x
		return xSquared + xCubed + x
	}()
	check.Equal(c, y, (5*5)+(5*5*5)+5)
	c.Printf("x² + x³ + x for x=5 = %d\n", y)

	v := func() int32 {
		x := int32(1)
		x += 2
		return x // without a return the literal does not compile
	}()
	check.Equal(c, v, 3)
}
