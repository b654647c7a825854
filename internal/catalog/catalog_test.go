package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/AsafMesi/practice/internal/catalog"
)

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	require.NoError(t, err)

	assert.Equal(t, "compound-types", c.Default)
	assert.Equal(t, []string{"variables", "basic-types", "ownership", "compound-types"}, c.Names())

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	e, ok := c.Lookup("compound-types")
	require.True(t, ok)
	assert.Equal(t, []string{"string", "array", "slice"}, e.Topics)
	assert.NotEmpty(t, e.Links)

	_, ok = c.Lookup("threads")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
		errText string
	}{
		{
			name: "minimal",
			doc:  "default: a\nexamples:\n  - name: a\n",
		},
		{
			name:    "empty",
			doc:     "default: a\n",
			wantErr: catalog.ErrEmptyCatalog,
		},
		{
			name:    "duplicate",
			doc:     "default: a\nexamples:\n  - name: a\n  - name: a\n",
			wantErr: catalog.ErrDuplicateExample,
		},
		{
			name:    "unknown default",
			doc:     "default: b\nexamples:\n  - name: a\n",
			wantErr: catalog.ErrUnknownDefault,
		},
		{
			name:    "missing name",
			doc:     "default: a\nexamples:\n  - title: untitled\n",
			errText: "missing name",
		},
		{
			name:    "bad level",
			doc:     "default: a\nlog_level: loud\nexamples:\n  - name: a\n",
			errText: "log_level",
		},
		{
			name:    "unknown field",
			doc:     "default: a\nflags: [--verbose]\nexamples:\n  - name: a\n",
			errText: "decode catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := catalog.Parse([]byte(tt.doc))
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.ErrorContains(t, err, tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, "a", c.Default)
			}
		})
	}
}
