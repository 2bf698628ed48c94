//go:build unit

package queries_test

import (
	"testing"

	"tripcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCursor(t *testing.T) {
	t.Run("empty cursor means first page", func(t *testing.T) {
		id, err := queries.ParseCursor("")
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("valid uuid cursor", func(t *testing.T) {
		want := uuid.New()
		id, err := queries.ParseCursor(want.String())
		require.NoError(t, err)
		require.NotNil(t, id)
		assert.Equal(t, want, *id)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		_, err := queries.ParseCursor("not-a-uuid")
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestValidateLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int32
	}{
		{"zero falls back to default", 0, queries.DefaultListLimit},
		{"negative falls back to default", -5, queries.DefaultListLimit},
		{"within range", 50, 50},
		{"at maximum", queries.MaxListLimit, queries.MaxListLimit},
		{"above maximum clamped", queries.MaxListLimit + 1, queries.MaxListLimit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, queries.ValidateLimit(c.limit))
		})
	}
}
