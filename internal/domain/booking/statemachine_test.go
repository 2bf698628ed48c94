//go:build unit

package booking_test

import (
	"testing"

	"tripcore/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	states := []booking.State{
		booking.StateDraft,
		booking.StateQuoted,
		booking.StateBooked,
		booking.StateCancelRequested,
	}
	allowed := map[booking.State]booking.State{
		booking.StateDraft:  booking.StateQuoted,
		booking.StateQuoted: booking.StateBooked,
		booking.StateBooked: booking.StateCancelRequested,
	}

	// Every (from, to) pair: exactly one legal successor per state, nothing
	// from cancel_requested, no same-state transitions, no skipped steps.
	for _, from := range states {
		for _, to := range states {
			from, to := from, to
			t.Run(from.String()+" to "+to.String(), func(t *testing.T) {
				err := booking.ValidateTransition(from, to)
				if allowed[from] == to {
					assert.NoError(t, err)
					return
				}
				require.Error(t, err)

				var transitionErr *booking.StateTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, to, transitionErr.To)
			})
		}
	}

	t.Run("unknown state has no successors", func(t *testing.T) {
		err := booking.ValidateTransition(booking.State("refunded"), booking.StateDraft)
		assert.Error(t, err)
	})
}

func TestTransitionEventType(t *testing.T) {
	t.Run("cancel leg emits only its specific event", func(t *testing.T) {
		assert.Equal(t, booking.EventCancelRequested,
			booking.TransitionEventType(booking.StateCancelRequested))
		assert.Equal(t, booking.EventBookingStateChanged,
			booking.TransitionEventType(booking.StateQuoted))
		assert.Equal(t, booking.EventBookingStateChanged,
			booking.TransitionEventType(booking.StateBooked))
	})

	t.Run("full lifecycle logs exactly four entries", func(t *testing.T) {
		types := []string{booking.EventBookingCreated}
		for _, target := range []booking.State{
			booking.StateQuoted,
			booking.StateBooked,
			booking.StateCancelRequested,
		} {
			types = append(types, booking.TransitionEventType(target))
		}

		assert.Equal(t, []string{
			booking.EventBookingCreated,
			booking.EventBookingStateChanged,
			booking.EventBookingStateChanged,
			booking.EventCancelRequested,
		}, types)
	})
}

func TestStateIsTerminal(t *testing.T) {
	assert.False(t, booking.StateDraft.IsTerminal())
	assert.False(t, booking.StateQuoted.IsTerminal())
	assert.False(t, booking.StateBooked.IsTerminal())
	assert.True(t, booking.StateCancelRequested.IsTerminal())
}

func TestStateIsValid(t *testing.T) {
	assert.True(t, booking.StateDraft.IsValid())
	assert.True(t, booking.StateQuoted.IsValid())
	assert.True(t, booking.StateBooked.IsValid())
	assert.True(t, booking.StateCancelRequested.IsValid())
	assert.False(t, booking.State("confirmed").IsValid())
	assert.False(t, booking.State("").IsValid())
}
