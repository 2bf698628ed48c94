//go:build unit

package money_test

import (
	"testing"

	"tripcore/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{"100.004", "100"},
		{"100.005", "100.01"},
		{"100.006", "100.01"},
		{"49.9995", "50"},
		{"-100.005", "-100.01"},
		{"0", "0"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got := money.Round2(decimal.RequireFromString(c.in))
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)), "got %s", got)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		d, err := money.Parse("123.45")
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("123.45")))
	})

	t.Run("empty string is zero", func(t *testing.T) {
		d, err := money.Parse("")
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := money.Parse("-1")
		require.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := money.Parse("12.3.4")
		require.Error(t, err)
	})
}
