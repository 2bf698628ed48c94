//go:build unit

package commission_test

import (
	"testing"

	"tripcore/internal/domain/commission"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name           string
		gross          string
		typ            commission.Type
		value          string
		wantCommission string
		wantNet        string
		wantUnknown    bool
	}{
		{
			name:  "percent",
			gross: "1000", typ: commission.TypePercent, value: "10",
			wantCommission: "100", wantNet: "900",
		},
		{
			name:  "percent rounds half up",
			gross: "1000", typ: commission.TypePercent, value: "10.005",
			wantCommission: "100.05", wantNet: "899.95",
		},
		{
			name:  "percent with fractional remainder",
			gross: "333.33", typ: commission.TypePercent, value: "15",
			wantCommission: "50", wantNet: "283.33",
		},
		{
			name:  "fixed",
			gross: "1000", typ: commission.TypeFixed, value: "75.50",
			wantCommission: "75.50", wantNet: "924.50",
		},
		{
			name:  "fixed per booking",
			gross: "1000", typ: commission.TypeFixedPerBooking, value: "50",
			wantCommission: "50", wantNet: "950",
		},
		{
			name:  "zero percent",
			gross: "1000", typ: commission.TypePercent, value: "0",
			wantCommission: "0", wantNet: "1000",
		},
		{
			name:  "hundred percent",
			gross: "1000", typ: commission.TypePercent, value: "100",
			wantCommission: "1000", wantNet: "0",
		},
		{
			name:  "zero gross",
			gross: "0", typ: commission.TypePercent, value: "10",
			wantCommission: "0", wantNet: "0",
		},
		{
			name:  "unknown type falls back to zero commission",
			gross: "1000", typ: commission.Type("revenue_share"), value: "10",
			wantCommission: "0", wantNet: "1000",
			wantUnknown: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			split := commission.Compute(
				decimal.RequireFromString(c.gross),
				c.typ,
				decimal.RequireFromString(c.value),
			)

			assert.True(t, split.Gross.Equal(decimal.RequireFromString(c.gross)),
				"gross %s", split.Gross)
			assert.True(t, split.Commission.Equal(decimal.RequireFromString(c.wantCommission)),
				"commission %s", split.Commission)
			assert.True(t, split.Net.Equal(decimal.RequireFromString(c.wantNet)),
				"net %s", split.Net)
			assert.Equal(t, c.wantUnknown, split.UnknownType)
		})
	}

	t.Run("gross always equals commission plus net", func(t *testing.T) {
		for _, gross := range []string{"1000", "999.99", "0.01", "123456.78"} {
			split := commission.Compute(decimal.RequireFromString(gross), commission.TypePercent, decimal.RequireFromString("12.5"))
			assert.True(t, split.Gross.Equal(split.Commission.Add(split.Net)), "gross %s", gross)
		}
	})
}

func TestResolveRate(t *testing.T) {
	productRate := &commission.Rate{
		Type:  commission.TypeFixedPerBooking,
		Value: decimal.NewFromInt(50),
	}
	defaultPercent := decimal.NewFromInt(8)

	t.Run("product rate wins over partner default", func(t *testing.T) {
		rate := commission.ResolveRate(productRate, &defaultPercent)

		assert.Equal(t, commission.TypeFixedPerBooking, rate.Type)
		assert.True(t, rate.Value.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, commission.SourceProductRate, rate.Source)
	})

	t.Run("partner default used when no product rate", func(t *testing.T) {
		rate := commission.ResolveRate(nil, &defaultPercent)

		assert.Equal(t, commission.TypePercent, rate.Type)
		assert.True(t, rate.Value.Equal(defaultPercent))
		assert.Equal(t, commission.SourcePartnerDefault, rate.Source)
	})

	t.Run("no configuration yields zero percent", func(t *testing.T) {
		rate := commission.ResolveRate(nil, nil)

		assert.Equal(t, commission.TypePercent, rate.Type)
		assert.True(t, rate.Value.IsZero())
		assert.Equal(t, commission.SourceNone, rate.Source)

		split := commission.Compute(decimal.NewFromInt(1000), rate.Type, rate.Value)
		assert.True(t, split.Commission.IsZero())
		assert.True(t, split.Net.Equal(decimal.NewFromInt(1000)))
	})
}
