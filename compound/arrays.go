package compound

import (
	"unsafe"

	"github.com/AsafMesi/practice/internal/check"
)

// An array's length is part of its type: [5]int32 and [6]int32 are
// different types. Arrays are values; assigning one copies every element.
// Indexing past the end with a constant is a compile error, with a variable
// a runtime panic.

// get is a bounds-checked lookup: it reports false instead of panicking.
func get[T any](s []T, i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

// filled returns a [100]int32 with every element set to v.
func filled(v int32) [100]int32 {
	var a [100]int32
	for i := range a {
		a[i] = v
	}
	return a
}

func demoArrays(c *check.C) {
	arr := [5]int32{1, 2, 3, 4, 5}
	check.Equal(c, len(arr), 5)

	charArr := [...]rune{'a', 'b', 'c'}
	check.Equal(c, unsafe.Sizeof(charArr), 12)
	c.Printf("sizeof([3]rune) = %d\n", unsafe.Sizeof(charArr))

	list := filled(1)
	check.Equal(c, list[37], 1)
	check.Equal(c, len(list), 100)

	names := [2]string{"Asaf", "Nicole"}
	if name0, ok := get(names[:], 0); ok {
		check.Equal(c, name0, "Asaf")
	}
	if _, ok := get(names[:], 2); !ok {
		c.Println("Out of bound")
	}

	// Arrays are values: the copy does not see later writes.
	copied := names
	names[0] = "Dana"
	check.Equal(c, copied[0], "Asaf")
}
