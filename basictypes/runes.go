package basictypes

import (
	"unsafe"

	"github.com/AsafMesi/practice/internal/check"
)

// A rune is an int32 holding one Unicode code point, so every rune is 4
// bytes whatever character it holds. Strings are bytes; runes are what you
// get when ranging over them.

func demoRuneBoolUnit(c *check.C) {
	c1 := 'a'
	c2 := '❤'
	check.Equal(c, unsafe.Sizeof(c1), 4)
	check.Equal(c, unsafe.Sizeof(c2), 4)
	c.Printf("sizeof('a') = %d  sizeof('❤') = %d\n", unsafe.Sizeof(c1), unsafe.Sizeof(c2))

	f, t := false, true
	check.Equal(c, unsafe.Sizeof(t), 1)
	if !f && t {
		c.Printf("Success %d\n", 18)
	}

	// struct{} is Go's unit: zero bytes, one value.
	unit := struct{}{}
	check.Equal(c, unsafe.Sizeof(unit), 0)
	check.Equal(c, unit, explicitlyReturnUnit(c))
}

func explicitlyReturnUnit(c *check.C) struct{} {
	c.Printf("Success %d\n", 19)
	return struct{}{}
}
