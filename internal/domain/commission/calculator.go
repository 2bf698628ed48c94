// Package commission derives money splits for booked bookings. Everything
// here is pure: stale or missing configuration defaults to zero commission
// instead of raising, and the caller flags the fallback through the event log
// so silent zero-commission setups get noticed.
package commission

import (
	"github.com/shopspring/decimal"

	"tripcore/internal/pkg/money"
)

type Type string

const (
	TypePercent         Type = "percent"
	TypeFixed           Type = "fixed"
	TypeFixedPerBooking Type = "fixed_per_booking"
)

type RateSource string

const (
	SourceProductRate    RateSource = "product_rate"
	SourcePartnerDefault RateSource = "partner_default"
	SourceNone           RateSource = "none"
)

// Rate is a resolved commission configuration for one partner/product pair.
type Rate struct {
	Type   Type
	Value  decimal.Decimal
	Source RateSource
}

// Split is the derived money breakdown. UnknownType is set when the
// configured commission type was not recognized and the fail-safe zero
// commission was used.
type Split struct {
	Gross       decimal.Decimal
	Commission  decimal.Decimal
	Net         decimal.Decimal
	UnknownType bool
}

var hundred = decimal.NewFromInt(100)

// Compute derives commission and net amounts from a gross amount. Rounding
// happens here and nowhere else.
func Compute(gross decimal.Decimal, typ Type, value decimal.Decimal) Split {
	var comm decimal.Decimal
	unknown := false

	switch typ {
	case TypePercent:
		comm = money.Round2(gross.Mul(value).Div(hundred))
	case TypeFixed, TypeFixedPerBooking:
		comm = money.Round2(value)
	default:
		// Unknown configuration must not block the booking flow.
		comm = decimal.Zero
		unknown = true
	}

	return Split{
		Gross:       gross,
		Commission:  comm,
		Net:         gross.Sub(comm),
		UnknownType: unknown,
	}
}

// ResolveRate applies the precedence order: explicit per-partner-per-product
// rate, then the partner's default percent, then zero.
func ResolveRate(productRate *Rate, partnerDefaultPercent *decimal.Decimal) Rate {
	if productRate != nil {
		r := *productRate
		r.Source = SourceProductRate
		return r
	}
	if partnerDefaultPercent != nil {
		return Rate{
			Type:   TypePercent,
			Value:  *partnerDefaultPercent,
			Source: SourcePartnerDefault,
		}
	}
	return Rate{
		Type:   TypePercent,
		Value:  decimal.Zero,
		Source: SourceNone,
	}
}
