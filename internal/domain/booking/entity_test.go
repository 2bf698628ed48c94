//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tripcore/internal/domain/booking"
	"tripcore/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StateDraft, actual.State())
		assert.Equal(t, int32(0), actual.AmendSeq())
		assert.False(t, actual.InventoryConsumed())
		assert.False(t, actual.InventoryReleased())
		assert.Nil(t, actual.SupplierBookingID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.True(t, actual.Amount().Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, "TRY", actual.Currency())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative amount",
				mutate: func(b *builder.BookingBuilder) { b.WithAmount(decimal.NewFromInt(-1)) },
				errIs:  booking.ErrNegativeAmount,
			},
			{
				name:   "zero amount is allowed",
				mutate: func(b *builder.BookingBuilder) { b.WithAmount(decimal.Zero) },
			},
			{
				name:   "unsupported currency",
				mutate: func(b *builder.BookingBuilder) { b.WithCurrency("USD") },
				errIs:  booking.ErrUnsupportedCurrency,
			},
			{
				name:   "zero pax",
				mutate: func(b *builder.BookingBuilder) { b.WithPax(0) },
				errIs:  booking.ErrInvalidPax,
			},
			{
				name:   "negative pax",
				mutate: func(b *builder.BookingBuilder) { b.WithPax(-3) },
				errIs:  booking.ErrInvalidPax,
			},
			{
				name:   "single pax is allowed",
				mutate: func(b *builder.BookingBuilder) { b.WithPax(1) },
			},
			{
				name:   "zero travel date",
				mutate: func(b *builder.BookingBuilder) { b.WithTravelDate(time.Time{}) },
				errIs:  booking.ErrInvalidTravelDate,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b1, err1 := builder.NewBookingBuilder().BuildDomain()
		b2, err2 := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestApplyTransition(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("legal transition mutates state and timestamp", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.ApplyTransition(booking.StateQuoted, now))
		assert.Equal(t, booking.StateQuoted, b.State())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("illegal transition leaves entity untouched", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		before := b.UpdatedAt()

		err = b.ApplyTransition(booking.StateBooked, now)
		require.Error(t, err)

		var transitionErr *booking.StateTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, booking.StateDraft, b.State())
		assert.Equal(t, before, b.UpdatedAt())
	})

	t.Run("full lifecycle", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.ApplyTransition(booking.StateQuoted, now))
		require.NoError(t, b.ApplyTransition(booking.StateBooked, now.Add(time.Minute)))
		require.NoError(t, b.ApplyTransition(booking.StateCancelRequested, now.Add(2*time.Minute)))
		assert.True(t, b.State().IsTerminal())
	})
}

func TestAmend(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("replaces amount and bumps seq", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Amend(decimal.NewFromInt(1500), now))
		assert.True(t, b.Amount().Equal(decimal.NewFromInt(1500)))
		assert.Equal(t, int32(1), b.AmendSeq())

		require.NoError(t, b.Amend(decimal.NewFromInt(1200), now.Add(time.Minute)))
		assert.Equal(t, int32(2), b.AmendSeq())
	})

	t.Run("allowed in booked state", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithState(booking.StateBooked).BuildReconstructed()

		require.NoError(t, b.Amend(decimal.NewFromInt(900), now))
		assert.Equal(t, int32(1), b.AmendSeq())
	})

	t.Run("rejected in terminal state", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithState(booking.StateCancelRequested).BuildReconstructed()

		err := b.Amend(decimal.NewFromInt(900), now)
		require.ErrorIs(t, err, booking.ErrAmendNotAllowed)
		assert.Equal(t, int32(0), b.AmendSeq())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		err = b.Amend(decimal.NewFromInt(-100), now)
		require.ErrorIs(t, err, booking.ErrNegativeAmount)
		assert.True(t, b.Amount().Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, int32(0), b.AmendSeq())
	})
}

func TestInventoryMarkers(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("consume then release", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		assert.False(t, b.NeedsInventoryRelease())

		require.NoError(t, b.MarkInventoryConsumed(now))
		assert.True(t, b.NeedsInventoryRelease())

		require.NoError(t, b.MarkInventoryReleased(now))
		assert.False(t, b.NeedsInventoryRelease())
	})

	t.Run("double consume rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.MarkInventoryConsumed(now))
		require.ErrorIs(t, b.MarkInventoryConsumed(now), booking.ErrAlreadyConsumed)
	})

	t.Run("release without hold rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, b.MarkInventoryReleased(now), booking.ErrNothingToRelease)
	})

	t.Run("double release rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.MarkInventoryConsumed(now))
		require.NoError(t, b.MarkInventoryReleased(now))
		require.ErrorIs(t, b.MarkInventoryReleased(now), booking.ErrAlreadyReleased)
	})
}

func TestUpdatedAtMonotonic(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	later := b.UpdatedAt().Add(time.Hour)
	require.NoError(t, b.ApplyTransition(booking.StateQuoted, later))
	require.Equal(t, later, b.UpdatedAt())

	// a skewed earlier clock must not move updated_at backwards
	require.NoError(t, b.Amend(decimal.NewFromInt(1100), later.Add(-30*time.Minute)))
	assert.Equal(t, later, b.UpdatedAt())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
