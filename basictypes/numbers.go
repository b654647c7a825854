package basictypes

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/AsafMesi/practice/internal/check"
)

// typeOf returns the name of T, not of the dynamic type behind an interface.
func typeOf[T any](T) string {
	return reflect.TypeFor[T]().String()
}

// checkedAdd adds two signed integers and reports false on overflow instead
// of wrapping around.
func checkedAdd[T constraints.Signed](a, b T) (T, bool) {
	total := a + b
	if (b > 0 && total < a) || (b < 0 && total > a) {
		return 0, false
	}
	return total, true
}

// Span is a half-open range [Start, End).
type Span[T constraints.Integer] struct {
	Start, End T
}

// SpanInclusive is a closed range [Start, End].
type SpanInclusive[T constraints.Integer] struct {
	Start, End T
}

func NewSpan[T constraints.Integer](start, end T) Span[T] {
	return Span[T]{Start: start, End: end}
}

func NewSpanInclusive[T constraints.Integer](start, end T) SpanInclusive[T] {
	return SpanInclusive[T]{Start: start, End: end}
}

func (s Span[T]) Contains(v T) bool { return v >= s.Start && v < s.End }

func (s SpanInclusive[T]) Contains(v T) bool { return v >= s.Start && v <= s.End }

// Values lists every element of the span in order.
func (s Span[T]) Values() []T {
	var out []T
	for v := s.Start; v < s.End; v++ {
		out = append(out, v)
	}
	return out
}

// Values lists every element of the span in order.
func (s SpanInclusive[T]) Values() []T {
	var out []T
	for v := s.Start; ; v++ {
		if v > s.End {
			break
		}
		out = append(out, v)
		if v == s.End { // stop before v++ overflows at the type's max
			break
		}
	}
	return out
}

func demoNumbers(c *check.C) {
	// ── Conversions are always explicit ──────────────────────────────────────
	v := uint16(uint8(38))
	check.Equal(c, v, 38)
	c.Printf("uint16(uint8(38))          = %d\n", v)

	var x uint32 = 5
	check.Equal(c, typeOf(x), "uint32")
	c.Printf("typeOf(x uint32)           = %s\n", typeOf(x))

	// ── Limits live in math ──────────────────────────────────────────────────
	check.Equal(c, math.MaxInt8, 127)
	check.Equal(c, math.MaxUint8, 255)

	// ── Overflow: integers wrap silently, so check explicitly ───────────────
	v1 := uint16(251) + 8
	v2, ok := checkedAdd[int16](251, 8)
	check.True(c, ok, "251 + 8 fits in int16")
	check.Equal(c, int16(v1), v2)
	_, ok = checkedAdd[int8](math.MaxInt8, 1)
	check.True(c, !ok, "MaxInt8 + 1 overflows int8")
	c.Printf("checkedAdd[int16](251, 8)  = %d\n", v2)

	// ── Literals in every base; _ is a digit separator ──────────────────────
	lit := 1_024 + 0xff + 0o77 + 0b1111_1111 // 1024 + 255 + 63 + 255
	check.Equal(c, lit, 1597)

	// ── Floating point ───────────────────────────────────────────────────────
	// In float32 0.1+0.2 rounds to the same value as 0.3; in float64 it does
	// not (0.30000000000000004).
	f1, f2 := float32(0.1), float32(0.2)
	check.Equal(c, f1+f2, float32(0.3))
	d1, d2 := 0.1, 0.2
	check.NotEqual(c, d1+d2, 0.3)
	c.Printf("float64 0.1+0.2            = %v\n", d1+d2)

	// ── Ranges ───────────────────────────────────────────────────────────────
	total := int32(0)
	for _, i := range NewSpan[int32](-3, 2).Values() { // end excluded
		total += i
	}
	check.Equal(c, total, -5)

	var letters strings.Builder
	for _, r := range NewSpanInclusive('a', 'z').Values() { // end included
		fmt.Fprintf(&letters, "%d ", byte(r))
	}
	c.Printf("'a'..='z' as bytes: %s\n", strings.TrimSpace(letters.String()))

	check.Equal(c, NewSpan(1, 5), Span[int]{Start: 1, End: 5})
	check.Equal(c, NewSpanInclusive(1, 5), SpanInclusive[int]{Start: 1, End: 5})
	check.True(c, !NewSpan(1, 5).Contains(5), "half-open span excludes its end")
	check.True(c, NewSpanInclusive(1, 5).Contains(5), "inclusive span includes its end")

	// ── Bit operations ───────────────────────────────────────────────────────
	and := uint32(0b0011) & 0b0101
	check.Equal(c, and, 0b0001)
	check.Equal(c, fmt.Sprintf("%04b", and), "0001")
	c.Printf("0011 AND 0101 is %04b\n", and)
}
