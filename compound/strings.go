package compound

import (
	"strings"

	"github.com/AsafMesi/practice/internal/check"
)

// A string is an immutable sequence of bytes. s[lo:hi] indexes bytes, not
// characters, and shares memory with s.

// byteRange returns s[lo:hi].
func byteRange(s string, lo, hi int) string {
	return s[lo:hi]
}

func demoStrings(c *check.C) {
	// ── Slicing by byte offsets ──────────────────────────────────────────────
	s := "hello world"
	hello := byteRange(s, 0, 5)
	world := byteRange(s, 6, 11)
	check.Equal(c, hello, "hello")
	check.Equal(c, world, "world")
	c.Printf("s[0:5]=%q s[6:11]=%q\n", hello, world)

	// ── Building ─────────────────────────────────────────────────────────────
	var sb strings.Builder
	sb.WriteString("hello")
	sb.WriteByte(',')
	sb.WriteString(" world")
	built := sb.String()
	built += "!"
	check.Equal(c, built, "hello, world!")

	// ── Replace returns a new string ─────────────────────────────────────────
	replaced := strings.ReplaceAll("hello world", "hello", "goodbye")
	check.Equal(c, replaced, "goodbye world")
	c.Printf("Success %d\n", 36)

	// ── Concatenation ────────────────────────────────────────────────────────
	s1, s2 := "hello ", "world"
	s3 := s1 + s2
	check.Equal(c, s3, "hello world")
	check.Equal(c, s1, "hello ") // + never consumes its operands

	// ── Escapes and raw strings ──────────────────────────────────────────────
	check.Equal(c, "Ru\x73\x74", "Rust")
	check.Equal(c, "\u211D", "ℝ")
	check.Equal(c, "\"", `"`)
	longString := "One " +
		"Two"
	check.Equal(c, longString, "One Two")
	// Raw strings use backquotes: no escapes are processed.
	check.Equal(c, `http:\`, "http:\\")
	check.Equal(c, ` _ "Quote" _ `, " _ \"Quote\" _ ")
	check.Equal(c, ` _ A string with "##" _ `, " _ A string with \"##\" _ ")

	// ── Ranging yields runes ─────────────────────────────────────────────────
	dogs := "🐶🐶🐶🐶"
	n := 0
	for _, r := range dogs {
		check.Equal(c, r, '🐶')
		n++
	}
	check.Equal(c, n, 4)
	c.Printf("%q: %d runes in %d bytes\n", dogs, n, len(dogs))
}
