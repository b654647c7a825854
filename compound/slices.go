package compound

import (
	"unsafe"

	"github.com/AsafMesi/practice/internal/check"
)

// A slice is a view into a backing array: {ptr, len, cap}. Slicing never
// copies, so writes through the slice land in the array.

func demoSlices(c *check.C) {
	a := [5]int{1, 2, 3, 4, 5}
	sl := a[1:3]
	check.Equal(c, sl, []int{2, 3})

	sl[0] = 20
	check.Equal(c, a[1], 20)
	c.Printf("a after sl[0] = 20: %v\n", a)

	arr := [3]rune{'中', '国', '人'}
	runes := arr[:]
	check.Equal(c, unsafe.Sizeof(runes), 3*unsafe.Sizeof(uintptr(0)))
	c.Printf("sizeof([]rune) = %d (ptr+len+cap)\n", unsafe.Sizeof(runes))

	// 中 takes 3 bytes in UTF-8.
	s := "中国人"
	check.Equal(c, s[:3], "中")

	// A substring keeps its bytes alive after the variable is reassigned.
	h := "hello"
	first := h[:1]
	h = ""
	check.Equal(c, first, "h")
	check.Equal(c, h, "")
	c.Printf("s[0] = %s\n", first)
}
