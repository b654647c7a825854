package basictypes

import "github.com/AsafMesi/practice/internal/check"

func sum(a, b int32) int32 { return a + b }

// getOption returns an optional value as (value, ok).
// Tag 1 is a placeholder that has not been written yet.
func getOption(tp uint8) (int32, bool) {
	switch tp {
	case 1:
		panic("not implemented")
	default:
		return 23, true
	}
}

// neverReturn has no return statement: a function whose body ends in a
// panic (or an endless for) is a terminating statement, so the compiler
// accepts it for any result type.
func neverReturn() int {
	panic("Success")
}

func demoFunctions(c *check.C) {
	check.Equal(c, sum(2, 2), 4)
	check.Equal(c, sum(-3, 1), -2)

	v, ok := getOption(2)
	check.True(c, ok, "getOption(2) has a value")
	c.Printf("Success %d\n", v)

	// neverReturn is only referenced: calling it would end the example.
	_ = neverReturn
}
