package booking

type State string

const (
	StateDraft           State = "draft"
	StateQuoted          State = "quoted"
	StateBooked          State = "booked"
	StateCancelRequested State = "cancel_requested"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateDraft, StateQuoted, StateBooked, StateCancelRequested:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined from s.
// Downstream refund workflows consume the CANCEL_REQUESTED event; they are
// not an extension of this state machine.
func (s State) IsTerminal() bool {
	return s == StateCancelRequested
}

// Lifecycle and financial event types recorded in the booking event stream.
const (
	EventBookingCreated        = "BOOKING_CREATED"
	EventBookingStateChanged   = "BOOKING_STATE_CHANGED"
	EventCancelRequested       = "CANCEL_REQUESTED"
	EventBookingAmended        = "BOOKING_AMENDED"
	EventSettlementCreated     = "SETTLEMENT_CREATED"
	EventCommissionTypeUnknown = "COMMISSION_TYPE_UNKNOWN"
)
