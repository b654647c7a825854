package compound

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsafMesi/practice/internal/check"
)

func TestDemo(t *testing.T) {
	t.Parallel()

	var (
		buf    bytes.Buffer
		failed []*check.Mismatch
	)
	Demo(check.NewWith(&buf, func(m *check.Mismatch) { failed = append(failed, m) }))

	require.Empty(t, failed)
	out := buf.String()
	assert.Contains(t, out, `s[0:5]="hello" s[6:11]="world"`)
	assert.Contains(t, out, "Out of bound")
	assert.Contains(t, out, "a after sl[0] = 20: [1 20 3 4 5]")
}

func TestDemoPanicsNever(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		for range 5 {
			Demo(check.New(&bytes.Buffer{}))
		}
	})
}

func TestByteRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", byteRange("hello world", 0, 5))
	assert.Equal(t, "world", byteRange("hello world", 6, 11))
	assert.Equal(t, "中", byteRange("中国人", 0, 3))
}

func TestFilled(t *testing.T) {
	t.Parallel()

	list := filled(1)
	assert.Equal(t, int32(1), list[37])
	assert.Len(t, list, 100)
	for i, v := range list {
		require.Equal(t, int32(1), v, "index %d", i)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	names := []string{"Asaf", "Nicole"}
	tests := []struct {
		index  int
		want   string
		wantOK bool
	}{
		{0, "Asaf", true},
		{1, "Nicole", true},
		{2, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		got, ok := get(names, tt.index)
		assert.Equal(t, tt.wantOK, ok, "index %d", tt.index)
		assert.Equal(t, tt.want, got, "index %d", tt.index)
	}

	assert.NotPanics(t, func() { get([]int(nil), 0) })
}
