package booking

import "fmt"

// allowedTransitions is the full transition table. Anything absent here,
// including same-state transitions and skipped steps, is illegal.
var allowedTransitions = map[State][]State{
	StateDraft:           {StateQuoted},
	StateQuoted:          {StateBooked},
	StateBooked:          {StateCancelRequested},
	StateCancelRequested: {},
}

type StateTransitionError struct {
	From State
	To   State
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("illegal booking state transition: %s -> %s", e.From, e.To)
}

// ValidateTransition checks the transition table without side effects.
// Callers surface a failure as a client error, never a server error.
func ValidateTransition(from, to State) error {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &StateTransitionError{From: from, To: to}
}

// TransitionEventType names the log entry a state change produces. The
// cancel leg gets only its specific event, never a generic state-changed
// row as well, so the full lifecycle logs exactly four entries:
// BOOKING_CREATED, BOOKING_STATE_CHANGED twice, CANCEL_REQUESTED.
func TransitionEventType(target State) string {
	if target == StateCancelRequested {
		return EventCancelRequested
	}
	return EventBookingStateChanged
}
